package daylog

import "github.com/hyp3rd/ewrap"

var (
	// ErrUnsupportedOperation is returned when a level-named operation does not exist.
	ErrUnsupportedOperation = ewrap.New("unsupported log operation")
	// ErrDisabled reports that output logging was switched off by configuration.
	ErrDisabled = ewrap.New("output logging is disabled")
	// ErrClosed reports that the logger was closed.
	ErrClosed = ewrap.New("logger is closed")
	// ErrLevelNotAllowed reports that a level was rejected by the threshold rules.
	ErrLevelNotAllowed = ewrap.New("level not allowed by threshold")
	// ErrSerializerNotFound indicates that a named serializer could not be resolved.
	ErrSerializerNotFound = ewrap.New("serializer not found")
)
