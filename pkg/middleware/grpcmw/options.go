package grpcmw

import (
	"github.com/google/uuid"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
)

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	requestKey  string
	idGenerator func() string
	logger      daylog.Logger
}

func actualOptions(opts ...Option) options {
	cfg := options{
		requestKey:  constants.RequestMetadataKey,
		idGenerator: uuid.NewString,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRequestKey customizes the metadata key used to populate the request identifier.
func WithRequestKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.requestKey = name
	}
}

// WithIDGenerator replaces the generator used when the metadata carries no request id.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if o == nil || fn == nil {
			return
		}

		o.idGenerator = fn
	}
}

// WithLogger selects the logger used for RPC lines and stored in the context.
// The process-wide logger is used otherwise.
func WithLogger(logger daylog.Logger) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		o.logger = logger
	}
}
