package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-crm/internal/domain"
	"go-crm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func rbacRouter(svc middleware.RBACService, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/leaves", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}, middleware.RBACAuthorize(svc, "leave", "read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeEnforcer{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, domain.EnforceRequest{Role: "Employee", Resource: "leave", Action: "read"}, req)
			return true, nil
		}}
		w := httptest.NewRecorder()
		rbacRouter(svc, "Employee").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		svc := &fakeEnforcer{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, nil }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "Client").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "leave:read")
	})

	t.Run("missing role", func(t *testing.T) {
		svc := &fakeEnforcer{enforceFn: func(domain.EnforceRequest) (bool, error) { return true, nil }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeEnforcer{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, errors.New("policy broken") }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "Admin").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
