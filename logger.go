// Package daylog defines a file-backed, leveled logger for Go applications.
//
// This package provides the vocabulary shared by every daylog component:
// - An immutable level table (ERROR=1, WARNING=2, ... USER_DEPRECATED=16384)
// - Threshold and threshold-set filtering configuration
// - The line format "[<date>][<LEVEL>] <message>\n"
// - Message joining with pluggable serialization of nested values
// - Hooks, write metrics and a Prometheus-style exporter
//
// Lines are appended to one file per calendar day, <root>/<LogPath>/log-YYYY-MM-DD.log,
// under an exclusive advisory lock so that several goroutines or processes can
// share the same file. The concrete logger lives in the adapter package; the
// log package holds the process-wide instance.
//
// Basic usage:
//
//	cfg := daylog.DefaultConfig()
//	cfg.LogPath = "storage/logs"
//	cfg.Threshold = daylog.LevelInfo.MustCode()
//
//	logger := adapter.NewAdapter(cfg)
//	defer logger.Close()
//
//	logger.Error("disk full")
//	logger.Info("user", map[string]any{"id": 42}, "signed in")
//
// Logging never fails the caller: filtered, disabled and I/O failures are
// reported only through the boolean result. The one exception is dynamic
// dispatch on a level name that does not exist, which returns
// ErrUnsupportedOperation.
package daylog

// Logger defines the interface for logging operations.
// Every method returns true iff a line was appended to the log file.
type Logger interface {
	// Level-named write operations
	Error(messages ...any) bool
	Warning(messages ...any) bool
	Debug(messages ...any) bool
	Info(messages ...any) bool
	Notice(messages ...any) bool
	SQL(messages ...any) bool
	Exception(messages ...any) bool

	Methods
}

// Methods defines the dispatch and lifecycle operations of a logger.
type Methods interface {
	// Log writes messages at any level of the level table.
	Log(level Level, messages ...any) bool
	// Call dispatches on a level name, failing with ErrUnsupportedOperation
	// when the name is not in the level table.
	Call(name string, messages ...any) (bool, error)
	// WriteToFile appends one already joined message.
	WriteToFile(level, message string) bool
	// Enabled reports whether writes can reach the disk.
	Enabled() bool
	// Close releases the logger; later writes fail without side effects.
	Close() error
}
