package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-crm/internal/auth"
	autherrors "go-crm/internal/auth/errors"
	authmock "go-crm/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

var testCookies = auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 24 * time.Hour}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("web client gets cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authmock.NewMockService(ctrl)
		svc.EXPECT().
			Login(gomock.Any(), "admin@example.com", "password123").
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "u1", Email: "admin@example.com"}, nil)

		h := auth.NewHandler(svc, testCookies)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"password123"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("X-Client-Type", "web")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, ck := range cookies {
			names = append(names, ck.Name)
		}
		assert.ElementsMatch(t, []string{"access_token", "refresh_token"}, names)

		env := decodeEnvelope(t, w.Body.Bytes())
		var data struct {
			AccessToken string `json:"accessToken"`
		}
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "access-token", data.AccessToken)
	})

	t.Run("bad credentials keep service status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authmock.NewMockService(ctrl)
		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		h := auth.NewHandler(svc, testCookies)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := auth.NewHandler(authmock.NewMockService(ctrl), testCookies)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reads token from cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authmock.NewMockService(ctrl)
		svc.EXPECT().
			RefreshToken(gomock.Any(), "cookie-refresh").
			Return("a2", "r2", auth.AuthResponse{ID: "u1"}, nil)

		h := auth.NewHandler(svc, testCookies)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-refresh"})

		h.RefreshToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 2)
	})

	t.Run("reads token from body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authmock.NewMockService(ctrl)
		svc.EXPECT().
			RefreshToken(gomock.Any(), "body-refresh").
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken)

		h := auth.NewHandler(svc, testCookies)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"body-refresh"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.RefreshToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authmock.NewMockService(ctrl)
	svc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

	h := auth.NewHandler(svc, testCookies)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"name":"A","email":"a@example.com","password":"secret1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authmock.NewMockService(ctrl)
	svc.EXPECT().GetMe(gomock.Any(), "u1").Return(&auth.AuthResponse{ID: "u1", Role: "Admin"}, nil)

	h := auth.NewHandler(svc, testCookies)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Set("user_id_validated", "u1")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
