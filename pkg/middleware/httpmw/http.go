// Package httpmw provides net/http middleware that carries the daylog logger
// and a request identifier through the request context and records one access
// line per request.
package httpmw

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
	"github.com/hyp3rd/daylog/pkg/log"
)

// Option configures the behaviour of the middleware.
type Option func(*options)

type options struct {
	requestHeader  string
	idGenerator    func() string
	generateIfMiss bool
	logger         daylog.Logger
}

// WithRequestHeader configures the header used to populate the request id.
func WithRequestHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestHeader = name
		}
	}
}

// WithIDGenerator provides a custom generator used when headers are missing.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.idGenerator = fn
		}
	}
}

// WithGenerateMissingIDs instructs the middleware to create ids when headers are absent.
func WithGenerateMissingIDs(enable bool) Option {
	return func(o *options) {
		o.generateIfMiss = enable
	}
}

// WithLogger attaches logger to every request context instead of the process-wide logger.
func WithLogger(logger daylog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts ...Option) options {
	cfg := options{
		requestHeader:  constants.RequestHeader,
		idGenerator:    uuid.NewString,
		generateIfMiss: true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ContextMiddleware stores the request id, taken from the request header or
// generated, and the configured logger in the request context. The id is
// echoed in the response header.
func ContextMiddleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := buildOptions(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			reqID := r.Header.Get(cfg.requestHeader)
			if reqID == "" && cfg.generateIfMiss {
				reqID = cfg.idGenerator()
			}

			if reqID != "" {
				ctx = log.WithRequestID(ctx, reqID)
				w.Header().Set(cfg.requestHeader, reqID)
			}

			if cfg.logger != nil {
				ctx = log.WithLogger(ctx, cfg.logger)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLog writes "METHOD path status duration request-id" for every request,
// at INFO for most responses and at ERROR for 5xx. The logger is taken from the
// request context when none is configured.
func AccessLog(opts ...Option) func(http.Handler) http.Handler {
	cfg := buildOptions(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger := cfg.logger
			if logger == nil {
				logger = log.FromContext(r.Context())
			}

			level := daylog.LevelInfo
			if recorder.status >= http.StatusInternalServerError {
				level = daylog.LevelError
			}

			messages := []any{r.Method, r.URL.Path, recorder.status, time.Since(start).String()}
			if reqID := log.RequestID(r.Context()); reqID != "" {
				messages = append(messages, reqID)
			}

			logger.Log(level, messages...)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}

	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	r.wroteHeader = true

	return r.ResponseWriter.Write(p) //nolint:wrapcheck // transparent wrapper
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
