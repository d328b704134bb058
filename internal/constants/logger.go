package constants

// Configuration keys, relative to ConfigSection.
const (
	KeyEnableOutputLog   = "enable_output_log"
	KeyLogPath           = "log_path"
	KeyLogThreshold      = "log_threshold"
	KeyLogThresholdArray = "log_threshold_array"
	KeyFilePermissions   = "file_permissions"
	KeyDirPermissions    = "dir_permissions"
	KeyDateFormat        = "date_format"
	KeyFilePrefix        = "file_prefix"
	KeyFileExtension     = "file_extension"
	KeyRootDir           = "root_dir"
)

// TimeFormat represents a Go reference-time layout used for line timestamps.
type TimeFormat string

const (
	// TimeFormatDefault renders "YYYY-MM-DD HH:mm:ss".
	TimeFormatDefault TimeFormat = "2006-01-02 15:04:05"
	// TimeFormatMicro renders "YYYY-MM-DD HH:mm:ss.uuuuuu".
	TimeFormatMicro TimeFormat = "2006-01-02 15:04:05.000000"
)

// String returns the layout.
func (t TimeFormat) String() string {
	return string(t)
}

// SectionKey returns the fully qualified key for a logger setting.
func SectionKey(key string) string {
	return ConfigSection + "." + key
}

// AllKeys returns every fully qualified logger key.
func AllKeys() []string {
	keys := []string{
		KeyEnableOutputLog,
		KeyLogPath,
		KeyLogThreshold,
		KeyLogThresholdArray,
		KeyFilePermissions,
		KeyDirPermissions,
		KeyDateFormat,
		KeyFilePrefix,
		KeyFileExtension,
		KeyRootDir,
	}

	qualified := make([]string, 0, len(keys))
	for _, key := range keys {
		qualified = append(qualified, SectionKey(key))
	}

	return qualified
}
