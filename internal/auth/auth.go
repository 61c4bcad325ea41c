package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager verifies the static service token and issues short-lived
// session tokens for browser clients.
type Manager struct {
	serviceToken string
	jwtSecret    []byte
	sessionTTL   time.Duration
}

type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewManager(serviceToken, jwtSecret string) *Manager {
	return &Manager{
		serviceToken: serviceToken,
		jwtSecret:    []byte(jwtSecret),
		sessionTTL:   24 * time.Hour,
	}
}

// VerifyServiceToken checks the static bearer token in constant time.
func (m *Manager) VerifyServiceToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(m.serviceToken)) == 1
}

// IssueSession mints a signed token carrying a fresh session id.
func (m *Manager) IssueSession() (token, sessionID string, err error) {
	sessionID = uuid.NewString()
	now := time.Now()

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtSecret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, sessionID, nil
}

// VerifySession validates a session token and returns its session id.
func (m *Manager) VerifySession(token string) (string, error) {
	claims := &SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.jwtSecret, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	if !parsed.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}

	return claims.SessionID, nil
}
