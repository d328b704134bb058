// Package output provides the output destinations used by the daylog adapter.
//
// DailyFileWriter appends lines to one plain-text file per calendar day:
//
//	<dir>/<prefix><YYYY-MM-DD>.<extension>
//
// Every append is a full, independent cycle: the file is opened for append,
// an exclusive advisory lock is taken, the line is rendered and written
// (partial writes are retried from the remaining offset), the lock is released
// and the file is closed. Nothing is cached between calls, so a new file is
// selected as soon as the date changes and several processes can share the
// same file without interleaving lines. A file created by an append gets its
// permission bits stamped once, after the first write.
//
// ConsoleWriter mirrors lines to a terminal with colors chosen from the
// level token of each line.
package output

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/daylog/internal/constants"
)

// FileConfig holds configuration for daily file output.
//
// - Dir is the directory holding the daily files
// - Prefix is prepended to the date in the file name
// - Extension is appended after a dot
// - FileMode is stamped on a file after the append that created it
// - ErrorHandler receives I/O errors that are not returned to the caller.
type FileConfig struct {
	// Dir is the directory holding the daily files
	Dir string
	// Prefix is prepended to the date in the file name
	Prefix string
	// Extension is appended after a dot
	Extension string
	// FileMode is stamped on newly created files
	FileMode os.FileMode
	// ErrorHandler is called when errors occur during file operations
	ErrorHandler func(error)
}

// DailyFileWriter appends lines to a file named after the current day.
type DailyFileWriter struct {
	dir          string
	prefix       string
	extension    string
	fileMode     os.FileMode
	errorHandler func(error)
	closed       atomic.Bool
}

// NewDailyFileWriter creates a daily writer rooted at config.Dir. The directory
// must already exist; it is not created here.
func NewDailyFileWriter(config FileConfig) (*DailyFileWriter, error) {
	if config.Dir == "" {
		return nil, ewrap.New("log directory is required")
	}

	if config.Prefix == "" {
		config.Prefix = constants.DefaultFilePrefix
	}

	if config.Extension == "" {
		config.Extension = constants.DefaultFileExtension
	}

	if config.FileMode == 0 {
		config.FileMode = constants.DefaultFileMode
	}

	return &DailyFileWriter{
		dir:          config.Dir,
		prefix:       config.Prefix,
		extension:    config.Extension,
		fileMode:     config.FileMode,
		errorHandler: config.ErrorHandler,
	}, nil
}

// PathFor returns the file that receives lines written at now.
func (w *DailyFileWriter) PathFor(now time.Time) string {
	return filepath.Join(w.dir, w.prefix+now.Format(constants.FileDateLayout)+"."+w.extension)
}

// Append writes one rendered line to path under an exclusive lock.
// render is called only once the lock is held and never when the file cannot
// be opened or locked. The error is nil iff the final write call succeeded.
func (w *DailyFileWriter) Append(path string, render func() []byte) (int, error) {
	if w.closed.Load() {
		return 0, ErrWriterClosed
	}

	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	//nolint:gosec // G304: the directory is resolved and validated at construction.
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, w.fileMode)
	if err != nil {
		return 0, w.report(ewrap.Wrap(err, "opening log file").WithMetadata("path", path))
	}

	written, writeErr := w.writeLocked(file, render)

	err = file.Close()
	if err != nil {
		w.report(ewrap.Wrap(err, "closing log file").WithMetadata("path", path))
	}

	if newFile {
		err = os.Chmod(path, w.fileMode)
		if err != nil {
			w.report(ewrap.Wrap(err, "setting log file permissions").
				WithMetadata("path", path).
				WithMetadata("mode", w.fileMode.String()))
		}
	}

	if writeErr != nil {
		return written, w.report(writeErr)
	}

	return written, nil
}

// Close stops the writer. Subsequent appends fail without touching the disk.
func (w *DailyFileWriter) Close() error {
	w.closed.Store(true)

	return nil
}

func (w *DailyFileWriter) writeLocked(file *os.File, render func() []byte) (int, error) {
	err := lockFile(file)
	if err != nil {
		return 0, ewrap.Wrap(ErrLockFailed, err.Error()).WithMetadata("path", file.Name())
	}

	defer func() {
		unlockErr := unlockFile(file)
		if unlockErr != nil {
			w.report(ewrap.Wrap(unlockErr, "unlocking log file").WithMetadata("path", file.Name()))
		}
	}()

	return WriteFull(file, render())
}

func (w *DailyFileWriter) report(err error) error {
	if w.errorHandler != nil && err != nil {
		w.errorHandler(err)
	}

	return err
}
