// Package configloader reads daylog configuration from environment variables,
// YAML documents and configuration files.
//
// Settings live under the "logger" section:
//
//	logger:
//	  enable_output_log: true
//	  log_path: storage/logs
//	  log_threshold: 2
//	  log_threshold_array: [ERROR, SQL]
//	  file_permissions: "0640"
//
// Environment variables use the prefix, the section and the key joined by
// underscores, e.g. DAYLOG_LOGGER_LOG_PATH. Threshold arrays read from the
// environment are comma separated.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
)

// FromEnv loads configuration sourced from environment variables using the provided prefix.
// An empty prefix selects DAYLOG.
func FromEnv(prefix string) (*daylog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, normalizePrefix(prefix))
	if err != nil {
		return nil, err
	}

	return fromViper(viperInstance)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*daylog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	return fromViper(viperInstance)
}

// FromFile loads configuration from a file and merges environment overrides using the default prefix.
// The format follows the file extension.
func FromFile(path string) (*daylog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, constants.DefaultEnvPrefix)
	if err != nil {
		return nil, err
	}

	viperInstance.SetConfigFile(path)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	return fromViper(viperInstance)
}

func fromViper(viperInstance *viper.Viper) (*daylog.Config, error) {
	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	// Environment-only keys are not part of AllSettings until they are set.
	for _, key := range constants.AllKeys() {
		if !viperInstance.IsSet(key) {
			continue
		}

		viperInstance.Set(key, viperInstance.Get(key))
	}

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	errorGroup := ewrap.NewErrorGroup()

	for _, key := range constants.AllKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			errorGroup.Add(ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix))
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return constants.DefaultEnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}
