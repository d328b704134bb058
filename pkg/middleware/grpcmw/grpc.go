// Package grpcmw provides gRPC server interceptors that carry the daylog
// logger and a request identifier through the call context and record one
// line per RPC.
package grpcmw

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/pkg/log"
)

// UnaryServerInterceptor enriches the call context and writes
// "method code duration request-id" once the handler returns: INFO on
// success, ERROR with the error message otherwise.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = cfg.enrich(ctx)
		start := time.Now()

		resp, err := handler(ctx, req)

		cfg.record(ctx, fullMethod(info), start, err)

		return resp, err
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	cfg := actualOptions(opts...)

	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := cfg.enrich(stream.Context())
		start := time.Now()

		err := handler(srv, &contextStream{ServerStream: stream, ctx: ctx})

		method := ""
		if info != nil {
			method = info.FullMethod
		}

		cfg.record(ctx, method, start, err)

		return err
	}
}

func (o options) enrich(ctx context.Context) context.Context {
	var reqID string

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(o.requestKey); len(values) > 0 {
			reqID = values[0]
		}
	}

	if reqID == "" {
		reqID = o.idGenerator()
	}

	ctx = log.WithRequestID(ctx, reqID)

	if o.logger != nil {
		ctx = log.WithLogger(ctx, o.logger)
	}

	return ctx
}

func (o options) record(ctx context.Context, method string, start time.Time, err error) {
	logger := o.logger
	if logger == nil {
		logger = log.FromContext(ctx)
	}

	messages := []any{method, status.Code(err).String(), time.Since(start).String()}
	if reqID := log.RequestID(ctx); reqID != "" {
		messages = append(messages, reqID)
	}

	if err != nil {
		logger.Log(daylog.LevelError, append(messages, status.Convert(err).Message())...)

		return
	}

	logger.Log(daylog.LevelInfo, messages...)
}

func fullMethod(info *grpc.UnaryServerInfo) string {
	if info == nil {
		return ""
	}

	return info.FullMethod
}

type contextStream struct {
	grpc.ServerStream

	ctx context.Context //nolint:containedctx // the stream context is replaced, not stored for later
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}
