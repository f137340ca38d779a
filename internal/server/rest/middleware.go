package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"itemvault/internal/common"
	"itemvault/internal/server/models"
)

const requestIDHeader = "X-Request-Id"

// authedHandle is an httprouter.Handle extended with the resolved identity.
type authedHandle func(http.ResponseWriter, *http.Request, httprouter.Params, *models.User)

// requireAuth resolves the access token to a live identity and passes it to
// the handler. No token, a bad token or a token whose user is gone all end
// the request with 401.
func (s *Server) requireAuth(next authedHandle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := extractToken(r)
		if token == "" {
			writeError(w, common.ErrorUnauthenticated)
			return
		}

		user, err := s.users.CurrentUser(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		next(w, r, ps, user)
	}
}

// extractToken reads the access token from the session cookie, falling back
// to a bearer Authorization header for non-browser clients.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(common.AccessTokenCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get(common.AuthorizationHeaderName)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}

// statusRecorder captures the status code for the access log and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.observe(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
