package daylog

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"
)

// Entry describes a line that has just been appended. It is passed to hooks.
type Entry struct {
	// Level is the normalized level name.
	Level Level
	// Code is the severity code of Level.
	Code int
	// Time is the clock reading used for the file name.
	Time time.Time
	// Message is the joined message, including its trailing newline.
	Message string
	// Line is the formatted line as written to disk.
	Line string
	// Path is the daily file that received the line.
	Path string
}

// Hook is an interface that provides a way to observe written lines.
type Hook interface {
	// OnLog is called after a line has been appended.
	OnLog(entry *Entry) error

	// Levels returns the log levels this hook should be triggered for.
	// An empty list matches every level.
	Levels() []Level
}

type namedHook struct {
	name string
	hook Hook
}

// HookRegistry holds named hooks, kept ordered by name so they always fire in
// the same order. It is safe for concurrent use.
type HookRegistry struct {
	mu    sync.RWMutex
	hooks []namedHook
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

func (r *HookRegistry) find(name string) (int, bool) {
	return slices.BinarySearchFunc(r.hooks, name, func(h namedHook, target string) int {
		return strings.Compare(h.name, target)
	})
}

// AddHook registers hook under name. Names are unique.
func (r *HookRegistry) AddHook(name string, hook Hook) error {
	if hook == nil {
		return ewrap.New("hook cannot be nil").WithMetadata("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, found := r.find(name)
	if found {
		return ewrap.New("hook already registered").WithMetadata("name", name)
	}

	r.hooks = slices.Insert(r.hooks, idx, namedHook{name: name, hook: hook})

	return nil
}

// RemoveHook unregisters the hook called name and reports whether it existed.
func (r *HookRegistry) RemoveHook(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, found := r.find(name)
	if found {
		r.hooks = slices.Delete(r.hooks, idx, idx+1)
	}

	return found
}

// GetHook returns the hook registered under name.
func (r *HookRegistry) GetHook(name string) (Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, found := r.find(name)
	if !found {
		return nil, false
	}

	return r.hooks[idx].hook, true
}

// Names returns the registered hook names in firing order.
func (r *HookRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.name
	}

	return names
}

// GetHooksForLevel returns the hooks that trigger for level, ordered by name.
// Level names match case-insensitively.
func (r *HookRegistry) GetHooksForLevel(level Level) []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	level = level.Normalize()

	var matched []Hook

	for _, h := range r.hooks {
		levels := h.hook.Levels()

		if len(levels) == 0 || slices.ContainsFunc(levels, func(l Level) bool { return l.Normalize() == level }) {
			matched = append(matched, h.hook)
		}
	}

	return matched
}

// FireHooks calls every hook matching entry.Level and collects their errors.
// A failing hook does not stop the others.
func (r *HookRegistry) FireHooks(entry *Entry) []error {
	var errs []error

	for _, hook := range r.GetHooksForLevel(entry.Level) {
		err := hook.OnLog(entry)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// StandardHook provides a simpler way to implement the Hook interface.
type StandardHook struct {
	// LevelList contains the levels this hook should trigger for
	LevelList []Level
	// LogHandler is called when a line is written
	LogHandler func(entry *Entry) error
}

// NewStandardHook creates a new StandardHook with the given levels and handler.
func NewStandardHook(levels []Level, handler func(entry *Entry) error) *StandardHook {
	return &StandardHook{
		LevelList:  levels,
		LogHandler: handler,
	}
}

// OnLog implements Hook.OnLog.
func (h *StandardHook) OnLog(entry *Entry) error {
	if h.LogHandler != nil {
		return h.LogHandler(entry)
	}

	return nil
}

// Levels implements Hook.Levels.
func (h *StandardHook) Levels() []Level {
	return h.LevelList
}
