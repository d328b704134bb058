package configloader

import (
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/daylog"
)

type rawConfig struct {
	Logger rawLogger `mapstructure:"logger" yaml:"logger"`
}

type rawLogger struct {
	EnableOutputLog   *bool  `mapstructure:"enable_output_log"   yaml:"enable_output_log"`
	LogPath           string `mapstructure:"log_path"            yaml:"log_path"`
	LogThreshold      string `mapstructure:"log_threshold"       yaml:"log_threshold"`
	LogThresholdArray any    `mapstructure:"log_threshold_array" yaml:"log_threshold_array"`
	FilePermissions   string `mapstructure:"file_permissions"    yaml:"file_permissions"`
	DirPermissions    string `mapstructure:"dir_permissions"     yaml:"dir_permissions"`
	DateFormat        string `mapstructure:"date_format"         yaml:"date_format"`
	FilePrefix        string `mapstructure:"file_prefix"         yaml:"file_prefix"`
	FileExtension     string `mapstructure:"file_extension"      yaml:"file_extension"`
	RootDir           string `mapstructure:"root_dir"            yaml:"root_dir"`
}

//nolint:cyclop // One branch per optional key.
func applyRaw(raw rawConfig) (*daylog.Config, error) {
	cfg := daylog.DefaultConfig()
	src := raw.Logger

	if src.EnableOutputLog != nil {
		cfg.Enabled = *src.EnableOutputLog
	}

	if src.LogPath != "" {
		cfg.LogPath = src.LogPath
	}

	if src.RootDir != "" {
		cfg.RootDir = src.RootDir
	}

	if src.LogThreshold != "" {
		threshold, err := parseThreshold(src.LogThreshold)
		if err != nil {
			return nil, err
		}

		cfg.Threshold = threshold
	}

	cfg.ThresholdSet = thresholdNames(src.LogThresholdArray)

	if src.FilePermissions != "" {
		mode, err := daylog.ParseFileMode(src.FilePermissions)
		if err != nil {
			return nil, err
		}

		cfg.FileMode = mode
	}

	if src.DirPermissions != "" {
		mode, err := daylog.ParseFileMode(src.DirPermissions)
		if err != nil {
			return nil, err
		}

		cfg.DirMode = mode
	}

	if src.DateFormat != "" {
		cfg.DateFormat = dateLayout(src.DateFormat)
	}

	if src.FilePrefix != "" {
		cfg.FilePrefix = src.FilePrefix
	}

	if src.FileExtension != "" {
		cfg.FileExtension = strings.TrimPrefix(src.FileExtension, ".")
	}

	return &cfg, nil
}

// parseThreshold accepts a numeric code or a level name.
func parseThreshold(value string) (int, error) {
	trimmed := strings.TrimSpace(value)

	threshold, err := strconv.Atoi(trimmed)
	if err == nil {
		return threshold, nil
	}

	level, err := daylog.ParseLevel(trimmed)
	if err != nil {
		return 0, ewrap.Wrap(err, "invalid log threshold").WithMetadata("value", value)
	}

	return level.MustCode(), nil
}

// thresholdNames flattens a YAML list or a comma separated string into level
// names. Blank entries are skipped; unknown names are kept and never match.
func thresholdNames(value any) []string {
	var items []string

	switch v := value.(type) {
	case nil:
		return nil
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, strings.Split(s, ",")...)
			}
		}
	}

	names := make([]string, 0, len(items))

	for _, item := range items {
		name := strings.TrimSpace(item)
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil
	}

	return names
}

// dateLayout maps the named formats "default" and "micro" to their layouts and
// passes any other value through as a Go layout.
func dateLayout(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "default":
		return daylog.DefaultDateFormat
	case "micro":
		return daylog.MicroDateFormat
	default:
		return value
	}
}
