// Package adapter provides the concrete daylog.Logger.
//
// The Adapter resolves its configuration once, filters each call against the
// level rules and hands accepted lines to the daily file writer, which appends
// them under an exclusive lock. Every accepted line can additionally be
// mirrored to a console and observed by hooks.
package adapter

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/output"
	"github.com/hyp3rd/daylog/internal/utils"
)

// Adapter implements the daylog.Logger interface on top of daily log files.
type Adapter struct {
	config       *daylog.Config
	dir          string
	threshold    int
	thresholdSet map[int]struct{}
	serializer   daylog.Serializer
	fileWriter   *output.DailyFileWriter
	console      output.Writer
	hookRegistry *daylog.HookRegistry

	// err holds the reason construction disabled the adapter.
	err    error
	closed atomic.Bool

	written  atomic.Uint64
	filtered atomic.Uint64
	failed   atomic.Uint64
	disabled atomic.Uint64
	bytes    atomic.Uint64
}

// Ensure Adapter implements the Logger and MetricsSource interfaces.
var (
	_ daylog.Logger        = (*Adapter)(nil)
	_ daylog.MetricsSource = (*Adapter)(nil)
)

// NewAdapter creates a new adapter with the given configuration.
//
// Construction never fails: when output logging is switched off, or the log
// directory cannot be resolved, created or written, the adapter is returned
// disabled and Err reports why. A disabled adapter performs no I/O.
func NewAdapter(config daylog.Config) *Adapter {
	applyDefaults(&config)

	adapter := &Adapter{
		config:       &config,
		hookRegistry: daylog.NewHookRegistry(),
	}

	err := adapter.configure()
	if err != nil {
		adapter.err = err
		adapter.fileWriter = nil
	}

	return adapter
}

func applyDefaults(config *daylog.Config) {
	if config.DateFormat == "" {
		config.DateFormat = daylog.DefaultDateFormat
	}

	config.DateFormat = daylog.PaddedLayout(config.DateFormat)

	if config.FilePrefix == "" {
		config.FilePrefix = daylog.DefaultFilePrefix
	}

	if config.FileExtension == "" {
		config.FileExtension = daylog.DefaultFileExtension
	}

	if config.FileMode == 0 {
		config.FileMode = daylog.LogFilePermissions
	}

	if config.DirMode == 0 {
		config.DirMode = daylog.LogDirPermissions
	}

	if config.Clock == nil {
		config.Clock = time.Now
	}

	config.ThresholdSet = append([]string(nil), config.ThresholdSet...)
}

func (a *Adapter) configure() error {
	if !a.config.Enabled {
		return daylog.ErrDisabled
	}

	for _, hook := range a.config.Hooks {
		err := a.hookRegistry.AddHook(hook.Name, hook.Hook)
		if err != nil {
			return err
		}
	}

	serializer, err := a.config.ResolveSerializer()
	if err != nil {
		return err
	}

	a.serializer = serializer

	dir, err := utils.ResolveLogDir(a.config.RootDir, a.config.LogPath)
	if err != nil {
		return err
	}

	err = utils.EnsureDir(dir, a.config.DirMode)
	if err != nil {
		return err
	}

	err = utils.Writable(dir)
	if err != nil {
		return err
	}

	a.dir = dir

	if len(a.config.ThresholdSet) > 0 {
		a.threshold = 0
		a.thresholdSet = a.config.ThresholdCodes()
	} else {
		a.threshold = a.config.Threshold
	}

	writer, err := output.NewDailyFileWriter(output.FileConfig{
		Dir:          dir,
		Prefix:       a.config.FilePrefix,
		Extension:    a.config.FileExtension,
		FileMode:     a.config.FileMode,
		ErrorHandler: a.config.ErrorHandler,
	})
	if err != nil {
		return err
	}

	a.fileWriter = writer

	if a.config.Console.Enable {
		a.console = newConsole(a.config.Console)
	}

	return nil
}

func newConsole(cfg daylog.ConsoleConfig) output.Writer {
	mode := output.ColorModeAuto

	switch {
	case cfg.DisableColors:
		mode = output.ColorModeNever
	case cfg.ForceColors:
		mode = output.ColorModeAlways
	}

	palette := cfg.LevelColors
	if palette == nil {
		palette = daylog.DefaultLevelColors()
	}

	colors := make(map[string]string, len(palette))
	for level, color := range palette {
		colors[level.Normalize().String()] = color
	}

	return output.NewConsoleWriter(cfg.Output, mode, colors)
}

// Error writes messages at the ERROR level.
func (a *Adapter) Error(messages ...any) bool {
	return a.Log(daylog.LevelError, messages...)
}

// Warning writes messages at the WARNING level.
func (a *Adapter) Warning(messages ...any) bool {
	return a.Log(daylog.LevelWarning, messages...)
}

// Debug writes messages at the DEBUG level.
func (a *Adapter) Debug(messages ...any) bool {
	return a.Log(daylog.LevelDebug, messages...)
}

// Info writes messages at the INFO level.
func (a *Adapter) Info(messages ...any) bool {
	return a.Log(daylog.LevelInfo, messages...)
}

// Notice writes messages at the NOTICE level.
func (a *Adapter) Notice(messages ...any) bool {
	return a.Log(daylog.LevelNotice, messages...)
}

// SQL writes messages at the SQL level.
func (a *Adapter) SQL(messages ...any) bool {
	return a.Log(daylog.LevelSQL, messages...)
}

// Exception writes messages at the EXCEPTION level.
func (a *Adapter) Exception(messages ...any) bool {
	return a.Log(daylog.LevelException, messages...)
}

// Log joins messages and writes them at level.
func (a *Adapter) Log(level daylog.Level, messages ...any) bool {
	if !a.Enabled() {
		a.disabled.Add(1)

		return false
	}

	return a.WriteToFile(level.String(), daylog.JoinMessages(a.serializer, messages...))
}

// Call dispatches on a level name. Names that are not in the level table fail
// with daylog.ErrUnsupportedOperation and nothing is written.
func (a *Adapter) Call(name string, messages ...any) (bool, error) {
	level, err := daylog.ParseLevel(name)
	if err != nil {
		return false, err
	}

	return a.Log(level, messages...), nil
}

// WriteToFile appends one message to the current day's file.
// It returns true iff the line was written in full.
func (a *Adapter) WriteToFile(level, message string) bool {
	if !a.Enabled() {
		a.disabled.Add(1)

		return false
	}

	normalized := daylog.Level(level).Normalize()

	code, ok := a.allowed(normalized)
	if !ok {
		a.filtered.Add(1)

		return false
	}

	now := a.config.Now()
	path := a.fileWriter.PathFor(now)

	var line string

	written, err := a.fileWriter.Append(path, func() []byte {
		line = daylog.FormatLine(normalized.String(), daylog.FormatTimestamp(now, a.config.DateFormat), message)

		return []byte(line)
	})
	if err != nil {
		a.failed.Add(1)

		if a.config.ErrorHandler == nil {
			fmt.Fprintf(os.Stderr, "Failed to write log: %v\n", err)
		}

		return false
	}

	a.written.Add(1)
	a.bytes.Add(uint64(written)) //nolint:gosec // written is never negative.

	a.mirror(line)
	a.processHooks(&daylog.Entry{
		Level:   normalized,
		Code:    code,
		Time:    now,
		Message: message,
		Line:    line,
		Path:    path,
	})

	return true
}

// allowed applies the level rules: a known level passes when its code is at
// most the threshold, or when the code is in the threshold set.
func (a *Adapter) allowed(level daylog.Level) (int, bool) {
	code, known := level.Code()
	if !known {
		return 0, false
	}

	if code <= a.threshold {
		return code, true
	}

	_, inSet := a.thresholdSet[code]

	return code, inSet
}

// IsAllowed reports whether a line at level would pass the level rules.
func (a *Adapter) IsAllowed(level daylog.Level) bool {
	_, ok := a.allowed(level.Normalize())

	return ok
}

func (a *Adapter) mirror(line string) {
	if a.console == nil {
		return
	}

	_, err := a.console.Write([]byte(line))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to mirror log line: %v\n", err)
	}
}

// processHooks executes registered hooks and reports any errors they produce.
func (a *Adapter) processHooks(entry *daylog.Entry) {
	for _, err := range a.hookRegistry.FireHooks(entry) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hook execution error: %v\n", err)
		}
	}
}

// CurrentLogFilePath returns the file that receives lines written at now, or
// an empty string when the adapter is disabled.
func (a *Adapter) CurrentLogFilePath(now time.Time) string {
	if a.fileWriter == nil {
		return ""
	}

	return a.fileWriter.PathFor(now)
}

// Dir returns the resolved log directory.
func (a *Adapter) Dir() string {
	return a.dir
}

// Enabled reports whether writes can reach the disk.
func (a *Adapter) Enabled() bool {
	return a.fileWriter != nil && !a.closed.Load()
}

// Err returns the reason construction disabled the adapter, ErrClosed after
// Close, or nil.
func (a *Adapter) Err() error {
	if a.err != nil {
		return a.err
	}

	if a.closed.Load() {
		return daylog.ErrClosed
	}

	return nil
}

// Hooks returns the registry fired after every successful write.
func (a *Adapter) Hooks() *daylog.HookRegistry {
	return a.hookRegistry
}

// Metrics returns a snapshot of the write counters.
func (a *Adapter) Metrics() daylog.WriteMetrics {
	return daylog.WriteMetrics{
		Written:  a.written.Load(),
		Filtered: a.filtered.Load(),
		Failed:   a.failed.Load(),
		Disabled: a.disabled.Load(),
		Bytes:    a.bytes.Load(),
	}
}

// GetConfig returns the resolved configuration.
func (a *Adapter) GetConfig() *daylog.Config {
	return a.config
}

// Close marks the adapter closed. It is safe to call more than once.
func (a *Adapter) Close() error {
	if a.closed.Swap(true) {
		return nil
	}

	errorGroup := ewrap.NewErrorGroup()

	if a.fileWriter != nil {
		err := a.fileWriter.Close()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if a.console != nil {
		err := a.console.Sync()
		if err != nil {
			errorGroup.Add(err)
		}

		err = a.console.Close()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}
