package grpcmw

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/daylog"
	"github.com/hyp3rd/daylog/internal/constants"
	"github.com/hyp3rd/daylog/pkg/log"
)

type recordingLogger struct {
	daylog.NoopLogger

	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Log(level daylog.Level, messages ...any) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, "["+level.String()+"] "+strings.TrimSuffix(daylog.JoinMessages(nil, messages...), "\n"))

	return true
}

func TestUnaryServerInterceptorMetadataExtraction(t *testing.T) {
	t.Parallel()

	recorder := &recordingLogger{}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		constants.RequestMetadataKey, "request-456",
	))

	interceptor := UnaryServerInterceptor(WithLogger(recorder))

	var capturedRequest string

	var capturedLogger daylog.Logger

	handler := func(ctx context.Context, _ any) (any, error) {
		capturedRequest = log.RequestID(ctx)
		capturedLogger = log.FromContext(ctx)

		return "ok", nil
	}

	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/orders.Service/Get"}, handler)
	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.Equal(t, "request-456", capturedRequest)
	require.Same(t, recorder, capturedLogger)

	require.Len(t, recorder.lines, 1)
	assert.True(t, strings.HasPrefix(recorder.lines[0], "[INFO] /orders.Service/Get OK "), recorder.lines[0])
	assert.True(t, strings.HasSuffix(recorder.lines[0], " request-456"), recorder.lines[0])
}

func TestUnaryServerInterceptorCustomKeyAndGenerator(t *testing.T) {
	t.Parallel()

	recorder := &recordingLogger{}

	interceptor := UnaryServerInterceptor(
		WithRequestKey("x-correlation"),
		WithIDGenerator(func() string { return "generated" }),
		WithLogger(recorder),
	)

	handler := func(ctx context.Context, _ any) (any, error) {
		require.Equal(t, "generated", log.RequestID(ctx))

		return nil, nil
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-correlation", "custom"))

	_, err = interceptor(ctx, nil, nil, func(ctx context.Context, _ any) (any, error) {
		require.Equal(t, "custom", log.RequestID(ctx))

		return nil, nil
	})
	require.NoError(t, err)
}

func TestUnaryServerInterceptorError(t *testing.T) {
	t.Parallel()

	recorder := &recordingLogger{}

	interceptor := UnaryServerInterceptor(WithLogger(recorder), WithIDGenerator(func() string { return "id-9" }))

	handler := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "order missing")
	}

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/orders.Service/Get"}, handler)
	require.Equal(t, codes.NotFound, status.Code(err))

	require.Len(t, recorder.lines, 1)
	assert.True(t, strings.HasPrefix(recorder.lines[0], "[ERROR] /orders.Service/Get NotFound "), recorder.lines[0])
	assert.True(t, strings.HasSuffix(recorder.lines[0], " id-9 order missing"), recorder.lines[0])
}

type fakeStream struct {
	grpc.ServerStream

	ctx context.Context //nolint:containedctx
}

func (s *fakeStream) Context() context.Context { return s.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	t.Parallel()

	recorder := &recordingLogger{}

	interceptor := StreamServerInterceptor(WithLogger(recorder), WithIDGenerator(func() string { return "stream-1" }))

	stream := &fakeStream{ctx: context.Background()}

	err := interceptor(nil, stream, &grpc.StreamServerInfo{FullMethod: "/orders.Service/Watch"},
		func(_ any, ss grpc.ServerStream) error {
			require.Equal(t, "stream-1", log.RequestID(ss.Context()))

			return nil
		})
	require.NoError(t, err)

	require.Len(t, recorder.lines, 1)
	assert.True(t, strings.HasPrefix(recorder.lines[0], "[INFO] /orders.Service/Watch OK "), recorder.lines[0])
}
