package calendar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/calendar"
	calendarmock "go-crm/internal/calendar/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalendarHandler_Create_UsesTokenIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := calendarmock.NewMockService(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any(), "u1", "Team Leader").Return(calendar.EventResponse{ID: "e1"}, nil)

	h := calendar.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "u1")
	c.Set("role", "Team Leader")
	c.Request = httptest.NewRequest(http.MethodPost, "/events",
		strings.NewReader(`{"title":"Demo","start":"2026-05-04T09:00:00Z","user":"someone-else"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCalendarHandler_Create_MissingStart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := calendar.NewHandler(calendarmock.NewMockService(ctrl))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"title":"Demo"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := calendarmock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "e1", "u1").Return(nil)

	h := calendar.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "u1")
	c.Params = gin.Params{{Key: "id", Value: "e1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/events/e1", nil)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Event deleted")
}
