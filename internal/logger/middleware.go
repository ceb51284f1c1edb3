package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger returns a chi-compatible middleware that logs every request
// with a generated request id, the response status and the handling duration.
func (l *Logger) RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			w.Header().Set("X-Request-ID", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			l.LogAPI(
				r.Method,
				fmt.Sprintf("%s [%s]", r.URL.Path, requestID[:8]),
				fmt.Sprintf("%d", rec.status),
				time.Since(start).String(),
			)
		})
	}
}
