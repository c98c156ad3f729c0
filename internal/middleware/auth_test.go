package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef-test"

func whoAmI(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.NewContextProvider().CurrentUserID(r.Context())
	if !ok {
		userID = "anonymous"
	}
	w.Header().Set("X-User", userID)
	w.Header().Set("X-Role", identity.Role(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func TestAuth(t *testing.T) {
	valid, err := middleware.IssueToken(secret, "u1", "admin", time.Hour)
	require.NoError(t, err)
	expired, err := middleware.IssueToken(secret, "u1", "", -time.Minute)
	require.NoError(t, err)
	foreign, err := middleware.IssueToken("another-secret-value", "u1", "", time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		header   string
		wantUser string
		wantRole string
	}{
		{name: "valid token", header: "Bearer " + valid, wantUser: "u1", wantRole: "admin"},
		{name: "lowercase scheme", header: "bearer " + valid, wantUser: "u1", wantRole: "admin"},
		{name: "no header", wantUser: "anonymous"},
		{name: "basic auth", header: "Basic dTE6cGFzcw==", wantUser: "anonymous"},
		{name: "expired", header: "Bearer " + expired, wantUser: "anonymous"},
		{name: "wrong secret", header: "Bearer " + foreign, wantUser: "anonymous"},
		{name: "no subject", header: "Bearer " + noSubject, wantUser: "anonymous"},
		{name: "no expiry", header: "Bearer " + noExpiry, wantUser: "anonymous"},
		{name: "garbage", header: "Bearer not.a.jwt", wantUser: "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := middleware.Auth(logger, secret)(http.HandlerFunc(whoAmI))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantUser, rr.Header().Get("X-User"))
			assert.Equal(t, tc.wantRole, rr.Header().Get("X-Role"))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
	}{
		{name: "admin", userID: "op", role: "admin", wantStatus: http.StatusNoContent},
		{name: "customer", userID: "u1", role: "customer", wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.RequireAdmin("admin")(http.HandlerFunc(whoAmI))

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tc.userID != "" {
				req = req.WithContext(identity.WithUser(req.Context(), tc.userID, tc.role))
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
