package rbac

import (
	"net/http"
	"strings"

	"go-crm/internal/domain"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Enforce answers for the caller's own role unless the body names another one.
func (h *Handler) Enforce(c *gin.Context) {
	var req struct {
		Role     string `json:"role"`
		Resource string `json:"resource" binding:"required"`
		Action   string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = c.GetString("role")
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     role,
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	res, err := h.service.ListPermissions(c.Request.Context(), c.Query("role"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Grant(c *gin.Context) {
	var req domain.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Grant(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Info("permission granted", zap.String("by", c.GetString("user_id_validated")), zap.String("role", res.Role))
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Revoke(c *gin.Context) {
	var req domain.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Revoke(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Info("permission revoked", zap.String("by", c.GetString("user_id_validated")), zap.String("role", req.Role))
	response.Success(c, http.StatusOK, gin.H{"message": "Permission revoked"}, nil)
}
