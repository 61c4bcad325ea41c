package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testManager() *Manager {
	return NewManager("service-token", "test-secret")
}

func TestVerifyServiceToken(t *testing.T) {
	m := testManager()

	if !m.VerifyServiceToken("service-token") {
		t.Error("Expected valid service token to verify")
	}

	if m.VerifyServiceToken("wrong") {
		t.Error("Expected wrong token to fail")
	}

	if m.VerifyServiceToken("") {
		t.Error("Expected empty token to fail")
	}
}

func TestIssueAndVerifySession(t *testing.T) {
	m := testManager()

	token, sessionID, err := m.IssueSession()
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	if sessionID == "" {
		t.Fatal("Expected non-empty session id")
	}

	got, err := m.VerifySession(token)
	if err != nil {
		t.Fatalf("VerifySession failed: %v", err)
	}

	if got != sessionID {
		t.Errorf("Session id mismatch: issued %q, verified %q", sessionID, got)
	}
}

func TestVerifySessionRejectsWrongSecret(t *testing.T) {
	other := NewManager("service-token", "other-secret")

	token, _, err := other.IssueSession()
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	if _, err := testManager().VerifySession(token); err == nil {
		t.Error("Expected token signed with another secret to fail")
	}
}

func TestVerifySessionRejectsExpired(t *testing.T) {
	m := testManager()

	claims := SessionClaims{
		SessionID: "s1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtSecret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := m.VerifySession(token); err == nil {
		t.Error("Expected expired token to fail")
	}
}

func performRequest(handler gin.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": SessionID(c)})
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRequireServiceToken(t *testing.T) {
	m := testManager()

	tests := []struct {
		name          string
		authorization string
		status        int
	}{
		{"valid token", "Bearer service-token", http.StatusOK},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic service-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(m.RequireServiceToken(), tt.authorization)

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestRequireSessionAcceptsSessionToken(t *testing.T) {
	m := testManager()

	token, sessionID, err := m.IssueSession()
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	w := performRequest(m.RequireSession(), "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), sessionID) {
		t.Errorf("Expected session id %q in response, got %s", sessionID, w.Body.String())
	}
}

func TestRequireSessionAcceptsServiceToken(t *testing.T) {
	m := testManager()

	w := performRequest(m.RequireSession(), "Bearer service-token")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
