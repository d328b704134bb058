package output

import (
	"io"

	"github.com/hyp3rd/ewrap"
)

// Writer is an interface for log output writers.
type Writer interface {
	// Write writes the given bytes to the underlying output.
	Write(p []byte) (n int, err error)
	// Sync ensures that all data has been written.
	Sync() error
	// Close closes the writer and releases any resources.
	Close() error
}

// plainWriter gives a bare io.Writer the Sync and Close methods of Writer.
// Both are forwarded when the wrapped value supports them.
type plainWriter struct {
	io.Writer
}

// NewWriterAdapter returns w itself when it already implements Writer and
// wraps it otherwise.
func NewWriterAdapter(w io.Writer) Writer {
	if wr, ok := w.(Writer); ok {
		return wr
	}

	return plainWriter{Writer: w}
}

func (w plainWriter) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	if err != nil {
		return n, ewrap.Wrap(err, "failed to write to writer")
	}

	return n, nil
}

func (w plainWriter) Sync() error {
	syncer, ok := w.Writer.(interface{ Sync() error })
	if !ok {
		return nil
	}

	return syncer.Sync()
}

func (w plainWriter) Close() error {
	closer, ok := w.Writer.(io.Closer)
	if !ok {
		return nil
	}

	err := closer.Close()
	if err != nil {
		return ewrap.Wrap(err, "failed to close writer")
	}

	return nil
}

// WriteFull writes p to w, retrying from the remaining offset after a partial
// write. It stops at the first failing call and returns the bytes accepted so far.
func WriteFull(w io.Writer, p []byte) (int, error) {
	written := 0

	for written < len(p) {
		n, err := w.Write(p[written:])
		written += n

		if err != nil {
			return written, ewrap.Wrap(err, "writing log line").
				WithMetadata("written", written).
				WithMetadata("length", len(p))
		}

		if n == 0 {
			return written, ErrShortWrite
		}
	}

	return written, nil
}
