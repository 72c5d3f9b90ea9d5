package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hotel_detail/internal/adapters/observability"
)

// Timeout bounds handler time; the body matches the JSON error envelope.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	const body = `{"success":false,"error":"요청 시간이 초과되었습니다."}`
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, body) }
}

// recorder captures the status and body size of a response.
type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *recorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *recorder) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Observe records metrics and one access log line per request. Page and
// generate responses carry their byte size so large documents stand out.
func Observe(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			dur := time.Since(start)
			route := routeOf(r)
			observability.ObserveHTTP(route, r.Method, rec.code(), dur)

			ev := l.Info()
			switch {
			case rec.code() >= http.StatusInternalServerError:
				ev = l.Warn()
			case r.Method == http.MethodGet && rec.code() == http.StatusNotModified:
				ev = l.Debug()
			}
			ev.Str("route", route).
				Str("request_id", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Int("status", rec.code()).
				Int("bytes", rec.bytes).
				Dur("duration", dur).
				Str("remote", r.RemoteAddr).
				Msg("http_request")
		})
	}
}

// routeOf prefers the matched chi pattern so /pages/{key} stays one series.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
