package account_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-crm/internal/account"
	accounterrors "go-crm/internal/account/errors"
	accountmock "go-crm/internal/account/mock"
	"go-crm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type apiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestAccountHandler_GetPaginated_EmployeeIsPinned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := accountmock.NewMockService(ctrl)
	svc.EXPECT().
		GetPaginated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q account.ListQuery) ([]account.AccountResponse, int64, error) {
			assert.Equal(t, "emp-1", q.UserID)
			assert.Equal(t, "Employee", q.Role)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 5, q.PageSize)
			return []account.AccountResponse{{ID: "a1"}}, 7, nil
		})

	h := account.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "emp-1")
	c.Set("role", "Employee")
	c.Request = httptest.NewRequest(http.MethodGet, "/accounts/paginated?page=2&pageSize=5&userId=other&role=Admin", nil)

	h.GetPaginated(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.JSONEq(t, `{"total":7,"totalPages":2,"page":2,"pageSize":5}`, string(env.Meta))
}

func TestAccountHandler_Create_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := accountmock.NewMockService(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), "admin-1").
		Return(account.AccountResponse{}, accounterrors.ErrDuplicateBusinessName.
			WithMessage("An account with this business name already exists. It is currently assigned to Priya.").
			WithDetails(account.DuplicateDetails{
				ExistingAccount: "acc-1",
				AssignedTo:      &account.MemberResponse{ID: "u1", Name: "Priya", Role: "Employee"},
			}))

	h := account.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/accounts",
		strings.NewReader(`{"businessName":"Acme","contactName":"A","contactNumber":"1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.JSONEq(t, `{"existingAccount":"acc-1","assignedTo":{"id":"u1","name":"Priya","role":"Employee"}}`, string(env.Error.Details))
}

func TestAccountHandler_Create_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	h := account.NewHandler(accountmock.NewMockService(ctrl))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"contactName":"A"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountHandler_GetCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := accountmock.NewMockService(ctrl)
	svc.EXPECT().GetByStatus(gomock.Any(), account.StatusCustomer).Return([]account.AccountResponse{{ID: "a1"}}, nil)

	h := account.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/accounts/customers", nil)

	h.GetCustomers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
