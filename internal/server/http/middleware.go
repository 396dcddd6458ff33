package httpserver

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/framehq/frame-api/internal/errs"
)

// logging records one line per request: metadata only, never payloads.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
			zap.String("reqID", chimiddleware.GetReqID(r.Context())),
		)
	})
}

// recoverer turns panics into 500 responses instead of dropped connections.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic",
					zap.Any("reason", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
				)
				s.writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error: "internal_error", Message: "internal error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate guards protected routes. The pipeline is linear and the first
// failure short-circuits: extract the bearer token (missing -> 401), verify it
// (-> 401), resolve the active user row (-> 404). The user is attached to the
// request context for this request only.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, err := bearerToken(r)
		if err != nil {
			s.writeError(w, errs.ErrUnauthorized)
			return
		}
		userID, err := s.tokens.Verify(tok)
		if err != nil {
			s.writeError(w, err)
			return
		}
		u, err := s.users.GetActiveByID(r.Context(), userID)
		if err != nil {
			// covers deactivated users holding otherwise valid tokens
			s.writeError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, error) {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		if t := strings.TrimSpace(v[7:]); t != "" {
			return t, nil
		}
	}
	return "", errors.New("no bearer token")
}
