package middlewares

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one,
// and echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(helpers.RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		w.Header().Set(helpers.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), helpers.ContextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("LoggingMiddleware: request_id=%s %s %s %d %v", helpers.RequestID(r), r.Method, r.URL.RequestURI(), rec.status, time.Since(start))
	})
}

// RecoverMiddleware answers a panicking handler with a 500.
func RecoverMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					log.Printf("RecoverMiddleware: request_id=%s panic: %v\n%s", helpers.RequestID(r), v, debug.Stack())
					helpers.WriteError(rnd, w, r, apperror.Internal(nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
