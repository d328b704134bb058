package daylog

// NoopLogger is a logger that does nothing. Every write reports false.
type NoopLogger struct{}

// NewNoop creates a new NoopLogger.
func NewNoop() Logger {
	return &NoopLogger{}
}

// Ensure NoopLogger implements Logger interface.
var _ Logger = (*NoopLogger)(nil)

// Level-named methods.

// Error discards an ERROR message.
func (*NoopLogger) Error(_ ...any) bool { return false }

// Warning discards a WARNING message.
func (*NoopLogger) Warning(_ ...any) bool { return false }

// Debug discards a DEBUG message.
func (*NoopLogger) Debug(_ ...any) bool { return false }

// Info discards an INFO message.
func (*NoopLogger) Info(_ ...any) bool { return false }

// Notice discards a NOTICE message.
func (*NoopLogger) Notice(_ ...any) bool { return false }

// SQL discards an SQL message.
func (*NoopLogger) SQL(_ ...any) bool { return false }

// Exception discards an EXCEPTION message.
func (*NoopLogger) Exception(_ ...any) bool { return false }

// Dispatch and lifecycle.

// Log discards a message at any level.
func (*NoopLogger) Log(_ Level, _ ...any) bool { return false }

// Call validates name like a real logger and discards the message.
func (*NoopLogger) Call(name string, _ ...any) (bool, error) {
	_, err := ParseLevel(name)

	return false, err
}

// WriteToFile discards the message.
func (*NoopLogger) WriteToFile(_, _ string) bool { return false }

// Enabled always reports false.
func (*NoopLogger) Enabled() bool { return false }

// Close is a no-op operation.
func (*NoopLogger) Close() error { return nil }
