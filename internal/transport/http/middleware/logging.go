package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/mongo-probe/platform/logger"
)

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("dur", time.Since(start)),
			}

			if ww.Status() >= http.StatusInternalServerError {
				logger.Warn(r.Context(), "http", fields...)
				return
			}
			logger.Info(r.Context(), "http", fields...)
		}()

		next.ServeHTTP(ww, r)
	})
}
