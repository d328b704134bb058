package daylog

import (
	"io"
	"os"
	"time"
)

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder seeded with DefaultConfig.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithEnabled turns output logging on or off.
func (b *ConfigBuilder) WithEnabled(enabled bool) *ConfigBuilder {
	b.config.Enabled = enabled

	return b
}

// WithRootDir sets the process root the log path is resolved against.
func (b *ConfigBuilder) WithRootDir(dir string) *ConfigBuilder {
	b.config.RootDir = dir

	return b
}

// WithLogPath sets the log directory, relative to the root directory.
// Example: builder.WithLogPath("storage/logs").
func (b *ConfigBuilder) WithLogPath(path string) *ConfigBuilder {
	b.config.LogPath = path

	return b
}

// WithThreshold sets the highest code that passes in threshold mode.
// Example: builder.WithThreshold(2) // ERROR and WARNING.
func (b *ConfigBuilder) WithThreshold(threshold int) *ConfigBuilder {
	b.config.Threshold = threshold

	return b
}

// WithThresholdLevel sets the threshold to the code of level.
// Unknown levels set the threshold to 0, which lets nothing through.
func (b *ConfigBuilder) WithThresholdLevel(level Level) *ConfigBuilder {
	code, _ := level.Code()
	b.config.Threshold = code

	return b
}

// WithThresholdSet switches to threshold-set mode with the given level names.
// Example: builder.WithThresholdSet("ERROR", "SQL").
func (b *ConfigBuilder) WithThresholdSet(levels ...string) *ConfigBuilder {
	b.config.ThresholdSet = append(b.config.ThresholdSet, levels...)

	return b
}

// WithFileMode sets the permissions stamped on new log files.
func (b *ConfigBuilder) WithFileMode(mode os.FileMode) *ConfigBuilder {
	b.config.FileMode = mode

	return b
}

// WithDirMode sets the permissions of a created log directory.
func (b *ConfigBuilder) WithDirMode(mode os.FileMode) *ConfigBuilder {
	b.config.DirMode = mode

	return b
}

// WithDateFormat sets the timestamp layout.
// Example: builder.WithDateFormat(daylog.MicroDateFormat).
func (b *ConfigBuilder) WithDateFormat(format string) *ConfigBuilder {
	b.config.DateFormat = format

	return b
}

// WithFileName sets the prefix and extension of daily file names.
// Empty values keep the current setting.
func (b *ConfigBuilder) WithFileName(prefix, extension string) *ConfigBuilder {
	if prefix != "" {
		b.config.FilePrefix = prefix
	}

	if extension != "" {
		b.config.FileExtension = extension
	}

	return b
}

// WithSerializer assigns the serializer used for nested message values.
func (b *ConfigBuilder) WithSerializer(serializer Serializer) *ConfigBuilder {
	b.config.Serializer = serializer

	return b
}

// WithSerializerName selects a serializer by name from the registry.
func (b *ConfigBuilder) WithSerializerName(name string) *ConfigBuilder {
	b.config.SerializerName = name

	return b
}

// WithSerializerRegistry sets the registry used when resolving named serializers.
func (b *ConfigBuilder) WithSerializerRegistry(registry *SerializerRegistry) *ConfigBuilder {
	b.config.SerializerRegistry = registry

	return b
}

// WithHook adds a hook to be called after every successful write.
// Example: builder.WithHook("alerts", NewStandardHook([]Level{LevelError}, notify)).
func (b *ConfigBuilder) WithHook(name string, hook Hook) *ConfigBuilder {
	if hook != nil {
		b.config.Hooks = append(b.config.Hooks, HookConfig{Name: name, Hook: hook})
	}

	return b
}

// WithConsoleMirror mirrors written lines to out, os.Stderr when nil.
func (b *ConfigBuilder) WithConsoleMirror(out io.Writer) *ConfigBuilder {
	b.config.Console.Enable = true
	b.config.Console.Output = out

	return b
}

// WithColors enables or disables colored console output.
func (b *ConfigBuilder) WithColors(enable bool) *ConfigBuilder {
	b.config.Console.DisableColors = !enable

	return b
}

// WithForceColors forces color output even when not writing to a terminal.
func (b *ConfigBuilder) WithForceColors(force bool) *ConfigBuilder {
	b.config.Console.ForceColors = force

	return b
}

// WithClock replaces the time source.
func (b *ConfigBuilder) WithClock(clock func() time.Time) *ConfigBuilder {
	b.config.Clock = clock

	return b
}

// WithErrorHandler sets the handler receiving I/O errors.
func (b *ConfigBuilder) WithErrorHandler(handler func(error)) *ConfigBuilder {
	b.config.ErrorHandler = handler

	return b
}

// WithDevelopmentDefaults lets every level up to ALL through, adds
// microseconds to timestamps and mirrors lines to the console.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	return b.
		WithThresholdLevel(LevelAll).
		WithDateFormat(MicroDateFormat).
		WithConsoleMirror(nil)
}

// WithProductionDefaults records errors and warnings only.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	return b.WithThresholdLevel(LevelWarning)
}

// Build creates a Config object from the builder.
func (b *ConfigBuilder) Build() *Config {
	config := b.config
	config.ThresholdSet = append([]string(nil), b.config.ThresholdSet...)
	config.Hooks = append([]HookConfig(nil), b.config.Hooks...)

	return &config
}
