package worksession_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-crm/internal/worksession"
	wsmock "go-crm/internal/worksession/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWorkSessionHandler_Start_UsesToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := wsmock.NewMockService(ctrl)
	svc.EXPECT().Start(gomock.Any(), "u1").Return(worksession.SessionResponse{ID: "s1"}, nil)

	h := worksession.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "u1")
	c.Request = httptest.NewRequest(http.MethodPost, "/work-sessions/start", nil)

	h.Start(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"session"`)
}

func TestWorkSessionHandler_Range(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("date-only end covers the whole day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := wsmock.NewMockService(ctrl)
		svc.EXPECT().Range(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (worksession.HistoryResponse, error) {
				assert.Equal(t, 1, from.Day())
				assert.Equal(t, 23, to.Hour())
				return worksession.HistoryResponse{History: []worksession.DayGroup{}}, nil
			})

		h := worksession.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/work-sessions/range?start=2026-02-01&end=2026-02-07", nil)

		h.Range(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := worksession.NewHandler(wsmock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/work-sessions/range?from=2026-02-01", nil)

		h.Range(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Start and end dates are required")
	})
}
