package sandbox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionNotFound    = errors.New("session not found")
)

type tokenClaims struct {
	SessionID string `json:"session_id"`
	Merchant  string `json:"merchant"`
	jwt.RegisteredClaims
}

// authenticate checks the login body. password is the SHA-512 hex digest the
// client sends.
func (s *Server) authenticate(userName, password, dealerCode string) error {
	if userName != s.merchant.userName || dealerCode != s.merchant.dealerCode {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.merchant.passwordHash, []byte(strings.ToLower(password))); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// createSession stores a new session and returns its signed access token.
// Callers hold s.mu.
func (s *Server) createSession() (*session, string, error) {
	now := s.now().UTC()
	sess := &session{
		id:        uuid.New().String(),
		expiresAt: now.Add(s.cfg.TokenExpiry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		SessionID: sess.id,
		Merchant:  s.merchant.userName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.sessions[sess.id] = sess
	return sess, tokenString, nil
}

// validateToken parses an access token and returns its live session.
func (s *Server) validateToken(tokenString string) (*session, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrSessionExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[claims.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sess.id)
		return nil, ErrSessionExpired
	}
	return sess, nil
}
