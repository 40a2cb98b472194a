package sandbox

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

// ChannelMiddleware rejects requests without the merchant's channelID header.
// The real service answers these at the HTTP layer, before any JSON handling.
func (s *Server) ChannelMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("channelID") != s.merchant.channelID {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"Success":             false,
				"ResponseDescription": "Unknown channel",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware validates the accessToken header and adds the session to
// the request context
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("accessToken")
		if token == "" {
			respondFail(w, CodeInvalidToken)
			return
		}

		sess, err := s.validateToken(token)
		if err != nil {
			s.logger.Debug("rejected access token", zap.Error(err))
			respondFail(w, CodeInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *session {
	sess, _ := r.Context().Value(sessionKey).(*session)
	return sess
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs all requests
func (s *Server) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sandbox/sms" {
			// the websocket upgrade needs the original ResponseWriter
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// RecoveryMiddleware recovers from panics
func (s *Server) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic in handler", zap.Any("panic", err), zap.String("path", r.URL.Path))
				writeJSON(w, http.StatusInternalServerError, map[string]any{
					"Success":             false,
					"ResponseDescription": "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
