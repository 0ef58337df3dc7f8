package http

import (
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type payloadContextKey struct{}

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.ByteString("payload", payload))
	}
	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	start := time.Now()
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound failed",
			zap.String("url", req.URL.String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}

// WithRequestLogging logs outbound requests and their outcomes at debug level.
func WithRequestLogging() ClientOpt {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{transport: rt}
	})
}
