package alert_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-crm/internal/alert"
	alerterrors "go-crm/internal/alert/errors"
	alertmock "go-crm/internal/alert/mock"

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

func TestAlertHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("falls back to authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := alertmock.NewMockService(ctrl)
		svc.EXPECT().List(gomock.Any(), "user-9").Return([]alert.AlertResponse{{ID: "a1", UserID: "user-9"}}, nil)

		h := alert.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/alerts", nil)
		c.Set("user_id_validated", "user-9")

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []alert.AlertResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
	})

	t.Run("missing user is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := alertmock.NewMockService(ctrl)
		svc.EXPECT().List(gomock.Any(), "").Return(nil, alerterrors.ErrUserIDRequired)

		h := alert.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/alerts", nil)

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestAlertHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := alertmock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "abc").Return(alerterrors.ErrAlertNotFound)

	h := alert.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/alerts/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
