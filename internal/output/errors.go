package output

import (
	"github.com/hyp3rd/ewrap"
)

// Common errors for the output package.
var (
	// ErrWriterClosed is returned when attempting to write to a closed writer.
	ErrWriterClosed = ewrap.New("writer is closed")

	// ErrShortWrite is returned when a write call makes no progress.
	ErrShortWrite = ewrap.New("short write")

	// ErrLockFailed is returned when the exclusive file lock cannot be acquired.
	ErrLockFailed = ewrap.New("failed to lock log file")
)
