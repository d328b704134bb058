package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
)

func resetDefault(t *testing.T) {
	t.Helper()

	require.NoError(t, Shutdown())
	t.Cleanup(func() { _ = Shutdown() })
}

func TestInit(t *testing.T) {
	resetDefault(t)

	cfg := daylog.DefaultConfig()
	cfg.RootDir = t.TempDir()

	logger, err := Init(cfg)
	require.NoError(t, err)
	require.True(t, logger.Enabled())

	assert.Same(t, logger, Default())

	_, err = Init(cfg)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitFromFile(t *testing.T) {
	resetDefault(t)

	root := t.TempDir()
	path := filepath.Join(root, "daylog.yaml")

	require.NoError(t, os.WriteFile(path, []byte("logger:\n  log_path: app-logs\n  root_dir: "+root+"\n"), 0o600))

	logger, err := InitFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "app-logs"), logger.Dir())

	_, err = InitFromFile(filepath.Join(root, "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultFromEnvironment(t *testing.T) {
	resetDefault(t)

	root := t.TempDir()
	t.Setenv("DAYLOG_LOGGER_ROOT_DIR", root)
	t.Setenv("DAYLOG_LOGGER_LOG_THRESHOLD", "1")

	logger := Default()
	require.True(t, logger.Enabled())
	assert.Same(t, logger, Default(), "Default is created once")

	assert.True(t, logger.Error("from env"))
	assert.False(t, logger.Warning("filtered"))
	assert.Equal(t, filepath.Join(root, "logs"), logger.Dir())
}

func TestDefaultWithInvalidEnvironmentIsDisabled(t *testing.T) {
	resetDefault(t)

	t.Setenv("DAYLOG_LOGGER_FILE_PERMISSIONS", "not-octal")

	logger := Default()
	assert.False(t, logger.Enabled())
	require.ErrorIs(t, logger.Err(), daylog.ErrDisabled)
}

func TestShutdown(t *testing.T) {
	resetDefault(t)

	cfg := daylog.DefaultConfig()
	cfg.RootDir = t.TempDir()

	logger, err := Init(cfg)
	require.NoError(t, err)

	require.NoError(t, Shutdown())
	assert.False(t, logger.Enabled())
	require.NoError(t, Shutdown())

	_, err = Init(cfg)
	require.NoError(t, err, "Init works again after Shutdown")
}

func TestNewWithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	dev := NewWithDefaults(constants.NonProductionEnvironment)
	t.Cleanup(func() { _ = dev.Close() })

	assert.Equal(t, daylog.LevelAll.MustCode(), dev.GetConfig().Threshold)
	assert.Equal(t, daylog.MicroDateFormat, dev.GetConfig().DateFormat)

	prod := NewWithDefaults("production")
	t.Cleanup(func() { _ = prod.Close() })

	assert.Equal(t, daylog.LevelWarning.MustCode(), prod.GetConfig().Threshold)
	assert.False(t, prod.GetConfig().Console.Enable)
}

func TestContextHandles(t *testing.T) {
	resetDefault(t)

	t.Setenv("DAYLOG_LOGGER_ENABLE_OUTPUT_LOG", "false")

	noop := daylog.NewNoop()
	ctx := WithLogger(context.Background(), noop)
	assert.Same(t, noop, FromContext(ctx))

	fallback := FromContext(context.Background())
	assert.Same(t, Default(), fallback)

	//nolint:staticcheck // nil contexts are accepted on purpose.
	assert.NotNil(t, FromContext(nil))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
