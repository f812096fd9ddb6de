package routing

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request: method, path, status, size and
// duration, plus the request ID when middleware.RequestID runs first.
// Server errors log at error level, client errors at warn.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				ev := log.Info()
				switch {
				case status >= http.StatusInternalServerError:
					ev = log.Error()
				case status >= http.StatusBadRequest:
					ev = log.Warn()
				}
				if id := middleware.GetReqID(r.Context()); id != "" {
					ev = ev.Str("request_id", id)
				}
				ev.Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote", r.RemoteAddr).
					Int("status", status).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
