package task_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-crm/internal/task"
	taskerrors "go-crm/internal/task/errors"
	taskmock "go-crm/internal/task/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTaskHandler_GetAll_ParsesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := taskmock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q task.ListQuery) ([]task.TaskResponse, int64, error) {
		assert.Equal(t, "u1", q.AssignedTo)
		assert.Equal(t, 2, q.Page)
		assert.Equal(t, 20, q.PageSize)
		assert.NotNil(t, q.From)
		assert.Equal(t, 23, q.To.Hour())
		return []task.TaskResponse{}, 25, nil
	})

	h := task.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/tasks?assignedTo=u1&page=2&limit=20&startDate=2026-01-01&endDate=2026-01-31", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":25`)
}

func TestTaskHandler_GetAll_BadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := task.NewHandler(taskmock.NewMockService(ctrl))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks?startDate=yesterday", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taskmock.NewMockService(ctrl)
		svc.EXPECT().Delete(gomock.Any(), "t1").Return(nil)

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "t1"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/tasks/t1", nil)

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Task deleted.")
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := taskmock.NewMockService(ctrl)
		svc.EXPECT().Delete(gomock.Any(), "t1").Return(taskerrors.ErrTaskNotFound)

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "t1"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/tasks/t1", nil)

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
