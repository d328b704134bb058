package daylog

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/daylog/internal/constants"
)

const (
	// DefaultDateFormat is the default layout of line timestamps, "YYYY-MM-DD HH:mm:ss".
	DefaultDateFormat = string(constants.TimeFormatDefault)
	// MicroDateFormat adds six-digit, zero-padded microseconds to the default layout.
	MicroDateFormat = string(constants.TimeFormatMicro)
	// DefaultLogPath is the default log directory, relative to the root directory.
	DefaultLogPath = constants.DefaultLogPath
	// DefaultFilePrefix is prepended to the date in log file names.
	DefaultFilePrefix = constants.DefaultFilePrefix
	// DefaultFileExtension is the extension of log files.
	DefaultFileExtension = constants.DefaultFileExtension
	// LogFilePermissions are the default permissions stamped on new log files.
	LogFilePermissions = constants.DefaultFileMode
	// LogDirPermissions are the default permissions of a created log directory.
	LogDirPermissions = constants.DefaultDirMode
	// DefaultThreshold lets every level up to ALL through.
	DefaultThreshold = 7
)

// HookConfig defines a hook to be called after a line has been written.
type HookConfig struct {
	// Name is the name of the hook.
	Name string
	// Hook is the hook to call.
	Hook Hook
}

// Config holds configuration for the logger. It is resolved once, when the
// logger is constructed, and never changes afterwards.
type Config struct {
	// Enabled turns output logging on (EnableOutputLog).
	Enabled bool
	// RootDir is the process root; the working directory when empty.
	RootDir string
	// LogPath is the log directory relative to RootDir (LogPath).
	LogPath string
	// Threshold lets levels with a code lower than or equal to it through (LogThreshold).
	Threshold int
	// ThresholdSet lists level names allowed regardless of Threshold
	// (LogThresholdArray). When non-empty, Threshold is forced to 0.
	ThresholdSet []string
	// FileMode is stamped on a log file after the write that created it.
	FileMode os.FileMode
	// DirMode is used when the log directory has to be created.
	DirMode os.FileMode
	// DateFormat is the Go layout of line timestamps.
	DateFormat string
	// FilePrefix is prepended to the date in file names.
	FilePrefix string
	// FileExtension is appended to file names after a dot.
	FileExtension string
	// Serializer converts nested maps, slices and structs to text.
	Serializer Serializer
	// SerializerName refers to a registered serializer to be loaded at construction.
	SerializerName string
	// SerializerRegistry holds available serializers for name resolution.
	SerializerRegistry *SerializerRegistry
	// Hooks are called after every successful write.
	Hooks []HookConfig
	// Console mirrors written lines to a console.
	Console ConsoleConfig
	// Clock returns the current time, used for file names and timestamps.
	Clock func() time.Time
	// ErrorHandler receives I/O errors that are otherwise only reported as false.
	ErrorHandler func(error)
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:            true,
		RootDir:            "",
		LogPath:            DefaultLogPath,
		Threshold:          DefaultThreshold,
		ThresholdSet:       nil,
		FileMode:           LogFilePermissions,
		DirMode:            LogDirPermissions,
		DateFormat:         DefaultDateFormat,
		FilePrefix:         DefaultFilePrefix,
		FileExtension:      DefaultFileExtension,
		Serializer:         nil,
		SerializerName:     "",
		SerializerRegistry: nil,
		Hooks:              make([]HookConfig, 0),
		Console:            DefaultConsoleConfig(),
		Clock:              time.Now,
		ErrorHandler:       nil,
	}
}

// DevelopmentConfig returns a configuration that lets every table level up to
// ALL through and mirrors lines to the console.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.Threshold = LevelAll.MustCode()
	config.DateFormat = MicroDateFormat
	config.Console.Enable = true

	return config
}

// ProductionConfig returns a configuration that only records errors and warnings.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.Threshold = LevelWarning.MustCode()

	return config
}

// Now returns the configured clock reading, or time.Now when no clock is set.
func (c *Config) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}

	return c.Clock()
}

// ThresholdCodes converts ThresholdSet into the set of allowed codes.
// Names missing from the level table are skipped and can never match.
func (c *Config) ThresholdCodes() map[int]struct{} {
	codes := make(map[int]struct{}, len(c.ThresholdSet))

	for _, name := range c.ThresholdSet {
		if code, ok := Level(name).Code(); ok {
			codes[code] = struct{}{}
		}
	}

	return codes
}

// ParseFileMode parses an octal permission string such as "0644" or "0o640".
func ParseFileMode(value string) (os.FileMode, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0o"), "0O")

	if trimmed == "" {
		return 0, ewrap.New("file mode cannot be empty")
	}

	mode, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil {
		return 0, ewrap.Wrap(err, "invalid file mode").WithMetadata("mode", value)
	}

	if mode > uint64(os.ModePerm) {
		return 0, ewrap.New("file mode exceeds permission bits").WithMetadata("mode", value)
	}

	return os.FileMode(mode), nil
}
