package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into a 500 JSON error. Nothing is
// written when the handler had already started its response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("panic method=%s path=%q request_id=%s error=%v\n%s",
				r.Method, r.URL.Path, RequestIDFrom(r), rec, debug.Stack())

			if sr, ok := w.(*statusRecorder); ok && sr.committed() {
				return
			}
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
