// Package log holds the process-wide daylog instance.
//
// The instance is created once, either explicitly at process start with Init
// or lazily from the environment on the first call to Default, and closed at
// shutdown with Shutdown. Request-scoped code should receive the logger
// through its context rather than reaching for the global:
//
//	logger, err := log.Init(cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer log.Shutdown()
//
//	ctx = log.WithLogger(ctx, logger)
//	log.FromContext(ctx).Info("service started")
package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
	"github.com/hyp3rd/daylog/pkg/adapter"
	"github.com/hyp3rd/daylog/pkg/configloader"
)

// ErrAlreadyInitialized is returned by Init when the process-wide logger exists.
var ErrAlreadyInitialized = ewrap.New("logger already initialized")

//nolint:gochecknoglobals
var (
	mu      sync.Mutex
	current *adapter.Adapter
)

// Init creates the process-wide logger from cfg. It fails when a logger was
// already created, explicitly or by Default.
func Init(cfg daylog.Config) (*adapter.Adapter, error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return nil, ErrAlreadyInitialized
	}

	current = adapter.NewAdapter(cfg)

	return current, nil
}

// InitFromFile loads a configuration file, with environment overrides, and
// creates the process-wide logger from it.
func InitFromFile(path string) (*adapter.Adapter, error) {
	cfg, err := configloader.FromFile(path)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to load logger configuration")
	}

	return Init(*cfg)
}

// Default returns the process-wide logger, creating it from DAYLOG_ environment
// variables when Init was never called. A configuration that cannot be loaded
// yields a disabled logger.
func Default() *adapter.Adapter {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return current
	}

	cfg, err := configloader.FromEnv(constants.DefaultEnvPrefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load logger configuration: %v\n", err)

		disabled := daylog.DefaultConfig()
		disabled.Enabled = false
		cfg = &disabled
	}

	current = adapter.NewAdapter(*cfg)

	return current
}

// Shutdown closes the process-wide logger. A later Init or Default creates a
// new one.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return nil
	}

	err := current.Close()
	current = nil

	if err != nil {
		return ewrap.Wrap(err, "failed to close logger")
	}

	return nil
}

// NewWithDefaults creates a standalone logger with settings for environment.
// The non-production environment writes every level with microsecond
// timestamps and mirrors lines to stderr; any other environment keeps only
// errors and warnings.
func NewWithDefaults(environment string) *adapter.Adapter {
	cfg := daylog.ProductionConfig()
	if environment == constants.NonProductionEnvironment {
		cfg = daylog.DevelopmentConfig()
	}

	return adapter.NewAdapter(cfg)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger daylog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, constants.LoggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the process-wide logger.
func FromContext(ctx context.Context) daylog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(constants.LoggerKey{}).(daylog.Logger); ok && logger != nil {
			return logger
		}
	}

	return Default()
}

// WithRequestID returns a copy of ctx carrying the request identifier id.
func WithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return constants.ContextWithRequestID(ctx, id)
}

// RequestID returns the request identifier stored in ctx, if any.
func RequestID(ctx context.Context) string {
	return constants.RequestIDFromContext(ctx)
}
