package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestAuthenticatePassesSubjectThrough(t *testing.T) {
	var gotSub string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, err := GetSubjectFromContext(r.Context())
		if err != nil {
			t.Errorf("subject not available in handler: %v", err)
		}
		gotSub = sub
	})

	handler := Authenticate("test-secret")(next)
	req := httptest.NewRequest(http.MethodPost, "/leagues", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "test-secret", "admin@example.com"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotSub != "admin@example.com" {
		t.Errorf("subject = %q, want admin@example.com", gotSub)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic YWRtaW46cGFzcw=="},
		{"malformed token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signedToken(t, "other-secret", "admin@example.com")},
	}

	handler := Authenticate("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with invalid credentials")
	}))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/leagues", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestGetSubjectFromContextWithoutClaims(t *testing.T) {
	if _, err := GetSubjectFromContext(context.Background()); err == nil {
		t.Error("expected an error for a context without claims")
	}
}
