package app

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/programstile/studio/internal/config"
	"github.com/programstile/studio/internal/rest"
	log "github.com/sirupsen/logrus"
)

const RequestIdHeader = "X-Request-Id"

type requestIdKey struct{}

func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tag every request with an id, reusing the caller's one when present
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := req.Header.Get(RequestIdHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIdHeader, id)
			next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), requestIdKey{}, id)))
		})
	})

	// Access log
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := deps.Clock.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, req)
			log.WithFields(log.Fields{
				"requestId": RequestId(req.Context()),
				"method":    req.Method,
				"path":      req.URL.Path,
				"status":    rec.status,
				"duration":  deps.Clock.Now().Sub(start).Round(time.Microsecond),
			}).Debug("Request handled")
		})
	})

	// Turn handler panics into 500 responses
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					log.WithField("requestId", RequestId(req.Context())).
						Errorf("panic while handling %s %s: %v\n%s", req.Method, req.URL.Path, p, debug.Stack())
					rest.WriteError(w, http.StatusInternalServerError, rest.ErrorResponse{Error: "Internal server error"})
				}
			}()
			next.ServeHTTP(w, req)
		})
	})
}
