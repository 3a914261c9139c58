package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/user"
	usererrors "go-crm/internal/user/errors"
	usermock "go-crm/internal/user/mock"

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

func TestUserHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := usermock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), user.RoleTeamLeader).Return([]user.UserResponse{{ID: "u1", Role: user.RoleTeamLeader}}, nil)

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?role=Team+Leader", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	var got []user.UserResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := usermock.NewMockService(ctrl)
	svc.EXPECT().GetByID(gomock.Any(), "abc").Return(user.UserResponse{}, usererrors.ErrUserNotFound)

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("other user is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(usermock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/users/u2/password", strings.NewReader(`{"currentPassword":"a","newPassword":"bbbbbb"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "u2"}}
		c.Set("user_id_validated", "u1")

		h.ChangePassword(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(usermock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/users/u1/password", strings.NewReader(`{"currentPassword":"a","newPassword":"b"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "u1"}}
		c.Set("user_id_validated", "u1")

		h.ChangePassword(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestUserHandler_UpdatePresence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := usermock.NewMockService(ctrl)
	svc.EXPECT().UpdatePresence(gomock.Any(), "u1", user.PresenceBusy).Return(nil)

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/users/u1/presence", strings.NewReader(`{"presence":"busy"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "u1"}}

	h.UpdatePresence(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_CreateTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict when leader taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := usermock.NewMockService(ctrl)
		svc.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(user.TeamResponse{}, usererrors.ErrTeamLeaderTaken)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Growth","teamLeaderId":"8d2f6a9e-7c2b-4b8e-9a51-0f3c1d2e4b6a"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateTeam(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("leader id must be a uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(usermock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(`{"name":"Growth","teamLeaderId":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateTeam(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
