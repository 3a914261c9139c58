package subscription_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-crm/internal/subscription"
	suberrors "go-crm/internal/subscription/errors"
	submock "go-crm/internal/subscription/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestSubscriptionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := submock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), subscription.CreateSubscriptionRequest{
			BusinessAccountID: "acc-1",
			ServiceID:         "svc-1",
			PlanID:            "plan-1",
			BillingCycle:      "Monthly",
		}).Return(subscription.SubscriptionResponse{ID: "sub-1", Number: "SUB-000001"}, nil)

		h := subscription.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/subscriptions",
			strings.NewReader(`{"businessAccount":"acc-1","service":"svc-1","planId":"plan-1","billingCycle":"Monthly"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"number":"SUB-000001"`)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := submock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(subscription.SubscriptionResponse{}, suberrors.ErrMissingFields)

		h := subscription.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Missing required fields", env.Error.Message)
	})
}

func TestSubscriptionHandler_UpgradePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := submock.NewMockService(ctrl)
	svc.EXPECT().
		UpgradePlan(gomock.Any(), "sub-1", subscription.UpgradePlanRequest{PlanID: "plan-2"}, "admin-1").
		Return(subscription.SubscriptionResponse{ID: "sub-1", PlanName: "Pro"}, nil)

	h := subscription.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "admin-1")
	c.Params = gin.Params{{Key: "subscriptionId", Value: "sub-1"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/subscriptions/upgrade/sub-1", strings.NewReader(`{"planId":"plan-2"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpgradePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Contains(t, string(env.Data), `"message":"Plan upgraded successfully"`)
}

func TestSubscriptionHandler_Cancel_AlreadyCancelled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := submock.NewMockService(ctrl)
	svc.EXPECT().Cancel(gomock.Any(), "sub-1").Return(subscription.SubscriptionResponse{}, suberrors.ErrAlreadyCancelled)

	h := subscription.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "sub-1"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/subscriptions/cancel/sub-1", nil)

	h.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}
