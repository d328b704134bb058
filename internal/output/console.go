package output

import (
	"bytes"
	"io"
	"os"
	"sync"
	"syscall"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

const (
	resetSequence  = "\x1b[0m"
	maxLookupBytes = 64
)

// ColorMode determines how colors are handled.
type ColorMode int

const (
	// ColorModeAuto detects if the output supports colors.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// ConsoleWriter mirrors formatted lines to a console, coloring each one by the
// level found in its "[date][LEVEL]" prefix.
type ConsoleWriter struct {
	mu         sync.Mutex
	out        io.Writer
	mode       ColorMode
	isTerminal bool
	colors     map[string]string
	buffer     bytes.Buffer
}

// NewConsoleWriter creates a ConsoleWriter. A nil out defaults to os.Stderr.
// colors maps upper-case level names to ANSI sequences; levels without an
// entry are written uncolored.
func NewConsoleWriter(out io.Writer, mode ColorMode, colors map[string]string) *ConsoleWriter {
	if out == nil {
		out = os.Stderr
	}

	palette := make(map[string]string, len(colors))
	for level, color := range colors {
		palette[level] = color
	}

	return &ConsoleWriter{
		out:        out,
		mode:       mode,
		isTerminal: IsTerminal(out),
		colors:     palette,
	}
}

// Write implements io.Writer. The returned count refers to payload, not to
// the escape sequences added around it.
func (w *ConsoleWriter) Write(payload []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	color, ok := "", false
	if w.shouldUseColors() {
		color, ok = w.colors[DetectLevel(payload)]
	}

	if !ok {
		n, err := w.out.Write(payload)
		if err != nil {
			return n, ewrap.Wrap(err, "failed writing to console output")
		}

		return n, nil
	}

	body := bytes.TrimSuffix(payload, []byte("\n"))

	w.buffer.Reset()
	w.buffer.WriteString(color)
	w.buffer.Write(body)
	w.buffer.WriteString(resetSequence)

	if len(body) != len(payload) {
		w.buffer.WriteByte('\n')
	}

	_, err := w.out.Write(w.buffer.Bytes())
	if err != nil {
		return 0, ewrap.Wrap(err, "failed writing to console output")
	}

	return len(payload), nil
}

// Sync synchronizes the underlying io.Writer if it implements the Sync() error interface.
func (w *ConsoleWriter) Sync() error {
	if isStdStream(w.out) {
		return nil
	}

	return NewWriterAdapter(w.out).Sync()
}

// Close closes the underlying io.Writer unless it is a standard stream.
func (w *ConsoleWriter) Close() error {
	if isStdStream(w.out) {
		return nil
	}

	return NewWriterAdapter(w.out).Close()
}

func isStdStream(out io.Writer) bool {
	f, ok := out.(*os.File)

	return ok && (f == os.Stdout || f == os.Stderr)
}

//nolint:exhaustive // ColorModeAuto is handled as default.
func (w *ConsoleWriter) shouldUseColors() bool {
	switch w.mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return w.isTerminal
	}
}

// DetectLevel extracts LEVEL from a line shaped like "[date][LEVEL] message".
// It returns an empty string when the prefix is missing.
func DetectLevel(line []byte) string {
	head := line
	if len(head) > maxLookupBytes {
		head = head[:maxLookupBytes]
	}

	start := bytes.Index(head, []byte("]["))
	if start < 0 || head[0] != '[' {
		return ""
	}

	rest := head[start+2:]

	end := bytes.IndexByte(rest, ']')
	if end <= 0 {
		return ""
	}

	return string(rest[:end])
}

// IsTerminal checks if the given writer is a terminal. It returns true if the writer is
// connected to a terminal, and false otherwise.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		if f.Fd() == uintptr(syscall.Stdout) || f.Fd() == uintptr(syscall.Stderr) {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	return false
}
