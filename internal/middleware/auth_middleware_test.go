package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-crm/internal/middleware"
	"go-crm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(testSecret)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString("user_id_validated"),
			"role":     c.GetString("role"),
			"ctx_user": contextutil.GetUserID(c.Request.Context()),
			"ctx_role": contextutil.GetRole(c.Request.Context()),
		})
	})
	r.GET("/admin", middleware.AuthMiddleware(), middleware.RoleMiddleware("Admin", "Superadmin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	t.Run("valid bearer token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "role": "Employee", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u1","role":"Employee","ctx_user":"u1","ctx_role":"Employee"}`, w.Body.String())
	})

	t.Run("token from cookie", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u2", "role": "Admin", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "typ": "refresh", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u1"}).SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})
}

func TestRoleMiddleware(t *testing.T) {
	r := newAuthRouter()

	for role, want := range map[string]int{
		"Admin":    http.StatusNoContent,
		"Employee": http.StatusForbidden,
	} {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "role": role, "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, role)
	}
}
