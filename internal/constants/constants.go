// Package constants provides application-wide constant values
// used throughout the daylog system. These constants define
// configuration keys, defaults, header names and context keys
// to ensure consistency across the codebase.
package constants

import "os"

const (
	// DefaultEnvPrefix is the prefix applied to environment overrides.
	DefaultEnvPrefix = "DAYLOG"
	// ConfigSection is the configuration section holding the logger keys.
	ConfigSection = "logger"
	// DefaultLogPath is the log directory, relative to the process root.
	DefaultLogPath = "logs"
	// DefaultFilePrefix is prepended to the date in log file names.
	DefaultFilePrefix = "log-"
	// DefaultFileExtension is the extension of log files, without the dot.
	DefaultFileExtension = "log"
	// FileDateLayout names the daily file, one file per calendar day.
	FileDateLayout = "2006-01-02"
	// DefaultFileMode is stamped on a log file after its first write.
	DefaultFileMode os.FileMode = 0o644
	// DefaultDirMode is used when creating the log directory.
	DefaultDirMode os.FileMode = 0o755
	// NonProductionEnvironment selects the development defaults.
	NonProductionEnvironment = "non-production"
)
