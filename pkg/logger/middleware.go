package logger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// requestScope keys the request-scoped logger in a context.
type requestScope struct{}

// FromContext returns the request-scoped logger, or a no-op logger outside a request.
func FromContext(ctx context.Context) interfaces.Logger {
	if scoped, ok := ctx.Value(requestScope{}).(interfaces.Logger); ok {
		return scoped
	}
	return NewNoop()
}

// WithContext stores logger as the request-scoped logger of ctx.
func WithContext(ctx context.Context, logger interfaces.Logger) context.Context {
	return context.WithValue(ctx, requestScope{}, logger)
}

// RequestLogger returns HTTP middleware that stores a request-scoped logger
// in the context and logs every completed request.
func RequestLogger(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			scoped := logger.WithFields(
				interfaces.String("request_id", middleware.GetReqID(r.Context())),
				interfaces.String("method", r.Method),
				interfaces.String("path", r.URL.Path),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(WithContext(r.Context(), scoped)))

			fields := []interfaces.Field{
				interfaces.Int("status", ww.Status()),
				interfaces.Int("bytes", ww.BytesWritten()),
				interfaces.Duration("duration", time.Since(start)),
			}
			switch {
			case ww.Status() >= http.StatusInternalServerError:
				scoped.Error("http request failed", fields...)
			default:
				scoped.Info("http request completed", fields...)
			}
		})
	}
}
