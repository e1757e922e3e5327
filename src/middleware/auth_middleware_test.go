package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtv3 "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, userID int64, username string, superAdmin bool) string {
	t.Helper()
	token := jwtv3.NewWithClaims(jwtv3.SigningMethodHS256, jwtv3.MapClaims{
		"user_id":     userID,
		"username":    username,
		"super_admin": superAdmin,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseTokenFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", 42, "alice", false))

	claims, err := ParseTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, int64(42), claims.UserID)
	assert.False(t, claims.SuperAdmin)
}

func TestParseTokenFromRequest_MissingClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := jwtv3.NewWithClaims(jwtv3.SigningMethodHS256, jwtv3.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	_, err = ParseTokenFromRequest(r)
	assert.Error(t, err)
}

func TestParseTokenFromRequest_MissingToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ParseTokenFromRequest(r)
	assert.Error(t, err)
}

func TestParseTokenFromRequest_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "wrong-secret", 42, "alice", false))

	_, err := ParseTokenFromRequest(r)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware_SetsContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID int64
	var gotSuperAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("user_id").(int64)
		gotSuperAdmin = r.Context().Value("super_admin").(bool)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", 7, "admin", true))
	w := httptest.NewRecorder()

	JWTAuthMiddleware(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.True(t, gotSuperAdmin)
}

func TestJWTAuthMiddleware_RejectsMissingToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JWTAuthMiddleware(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperAdminMiddleware_Forbidden(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	SuperAdminMiddleware(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
