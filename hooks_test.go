package daylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookRegistry(t *testing.T) {
	registry := NewHookRegistry()

	hook := NewStandardHook([]Level{LevelError}, nil)

	require.NoError(t, registry.AddHook("errors", hook))
	require.Error(t, registry.AddHook("errors", hook), "duplicate names are rejected")
	require.Error(t, registry.AddHook("nil", nil))

	got, ok := registry.GetHook("errors")
	require.True(t, ok)
	assert.Same(t, hook, got)

	assert.True(t, registry.RemoveHook("errors"))
	assert.False(t, registry.RemoveHook("errors"))

	_, ok = registry.GetHook("errors")
	assert.False(t, ok)
}

func TestGetHooksForLevel(t *testing.T) {
	registry := NewHookRegistry()

	all := NewStandardHook(nil, nil)
	errorsOnly := NewStandardHook([]Level{LevelError}, nil)
	sqlOnly := NewStandardHook([]Level{LevelSQL}, nil)

	require.NoError(t, registry.AddHook("b-errors", errorsOnly))
	require.NoError(t, registry.AddHook("a-all", all))
	require.NoError(t, registry.AddHook("c-sql", sqlOnly))

	hooks := registry.GetHooksForLevel(LevelError)
	require.Len(t, hooks, 2)
	assert.Same(t, all, hooks[0])
	assert.Same(t, errorsOnly, hooks[1])

	hooks = registry.GetHooksForLevel(LevelInfo)
	require.Len(t, hooks, 1)
	assert.Same(t, all, hooks[0])
}

func TestGetHooksForLevelIgnoresCase(t *testing.T) {
	registry := NewHookRegistry()

	lower := NewStandardHook([]Level{"error", " sql "}, nil)
	require.NoError(t, registry.AddHook("lower", lower))

	for _, level := range []Level{LevelError, "Error", LevelSQL, "sql"} {
		hooks := registry.GetHooksForLevel(level)
		require.Len(t, hooks, 1, "level %q", level)
		assert.Same(t, lower, hooks[0])
	}

	assert.Empty(t, registry.GetHooksForLevel(LevelInfo))
}

func TestFireHooks(t *testing.T) {
	registry := NewHookRegistry()

	var seen []string

	errBoom := errors.New("boom")

	require.NoError(t, registry.AddHook("record", NewStandardHook(nil, func(entry *Entry) error {
		seen = append(seen, entry.Line)

		return nil
	})))
	require.NoError(t, registry.AddHook("fail", NewStandardHook([]Level{LevelWarning}, func(*Entry) error {
		return errBoom
	})))

	errs := registry.FireHooks(&Entry{Level: LevelInfo, Line: "[d][INFO] a\n"})
	assert.Empty(t, errs)

	errs = registry.FireHooks(&Entry{Level: LevelWarning, Line: "[d][WARNING] b\n"})
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errBoom)

	assert.Equal(t, []string{"[d][INFO] a\n", "[d][WARNING] b\n"}, seen)
}

func TestStandardHookWithoutHandler(t *testing.T) {
	hook := NewStandardHook([]Level{LevelNotice}, nil)

	require.NoError(t, hook.OnLog(&Entry{}))
	assert.Equal(t, []Level{LevelNotice}, hook.Levels())
}

func TestHookRegistryNames(t *testing.T) {
	registry := NewHookRegistry()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, registry.AddHook(name, NewStandardHook(nil, nil)))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.Names())

	registry.RemoveHook("mid")
	assert.Equal(t, []string{"alpha", "zeta"}, registry.Names())
}
