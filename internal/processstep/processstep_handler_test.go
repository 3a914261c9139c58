package processstep_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/processstep"
	psmock "go-crm/internal/processstep/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProcessStepHandler_CreateGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := psmock.NewMockService(ctrl)
	svc.EXPECT().CreateGroup(gomock.Any(), processstep.CreateGroupRequest{
		StepType: "SEO",
		Steps:    []processstep.StepInput{{StepName: "Audit"}},
	}).Return([]processstep.StepResponse{{ID: "s1", StepName: "Audit", Order: 1}}, nil)

	h := processstep.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/process-steps",
		strings.NewReader(`{"stepType":"SEO","steps":[{"stepName":"Audit"}]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateGroup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"stepName":"Audit"`)
}

func TestProcessStepHandler_CreateGroup_StepNameRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := processstep.NewHandler(psmock.NewMockService(ctrl))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/process-steps",
		strings.NewReader(`{"stepType":"SEO","steps":[{"url":"x"}]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateGroup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessStepHandler_DeleteGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := psmock.NewMockService(ctrl)
	svc.EXPECT().DeleteGroup(gomock.Any(), "SEO").Return(nil)

	h := processstep.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "stepType", Value: "SEO"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/process-steps/SEO", nil)

	h.DeleteGroup(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Step Group 'SEO' Deleted")
}
