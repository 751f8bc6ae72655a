package httpx

import (
	"log"
	"net/http"
	"time"
)

// statusRecorder remembers what a handler wrote so it can be logged afterwards.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status != 0 {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

func (sr *statusRecorder) committed() bool {
	return sr.status != 0
}

// AccessLogMiddleware logs one line per request. route is the ServeMux pattern
// that matched (e.g. "GET /books/isbn/{isbn}"), so lookups for different ISBNs
// group together; it is "-" when nothing matched.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(sr, r)

		status := sr.status
		if status == 0 {
			status = http.StatusOK
		}
		route := r.Pattern
		if route == "" {
			route = "-"
		}

		log.Printf("access method=%s path=%q route=%q status=%d bytes=%d duration_ms=%d request_id=%s",
			r.Method,
			r.URL.Path,
			route,
			status,
			sr.bytes,
			time.Since(start).Milliseconds(),
			RequestIDFrom(r),
		)
	})
}
