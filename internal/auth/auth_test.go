package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kbportal/internal/auth"
	"kbportal/internal/observability"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const secret = "s3cret"

func protected() http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(auth.Subject(r.Context())))
	})
	return auth.Middleware(secret, observability.NewNopLogger())(h)
}

func TestIssueAndVerify(t *testing.T) {
	tok, err := auth.Issue(secret, "somchai", time.Hour)
	require.NoError(t, err)

	sub, err := auth.Verify(secret, tok)
	require.NoError(t, err)
	require.Equal(t, "somchai", sub)

	_, err = auth.Verify("other", tok)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tok, err := auth.Issue(secret, "somchai", -time.Second)
	require.NoError(t, err)

	_, err = auth.Verify(secret, tok)
	require.Error(t, err)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "x"}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = auth.Verify(secret, tok)
	require.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	tok, err := auth.Issue(secret, "somchai", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"bad token", "Bearer nope", http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"valid", "Bearer " + tok, http.StatusOK, "somchai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected().ServeHTTP(rec, req)

			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestMiddlewareDisabledWithoutSecret(t *testing.T) {
	h := auth.Middleware("", observability.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}
