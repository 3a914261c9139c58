package leave

import (
	"net/http"
	"strconv"

	leaveerrors "go-crm/internal/leave/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const roleEmployee = "Employee"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// subject pins Employees to their own records.
func subject(c *gin.Context, requested string) string {
	if c.GetString("role") == roleEmployee {
		if self := c.GetString("user_id_validated"); self != "" {
			return self
		}
	}
	return requested
}

func (h *Handler) Apply(c *gin.Context) {
	var req ApplyLeaveRequest
	if c.GetString("role") == roleEmployee {
		req.UserID = c.GetString("user_id_validated")
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	req.UserID = subject(c, req.UserID)
	h.logger.Debug("http apply leave", zap.String("user_id", req.UserID))

	resp, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"leave": resp}, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetMine(c.Request.Context(), subject(c, c.Param("userId")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBalance(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	resp, err := h.service.GetBalance(c.Request.Context(), subject(c, c.Param("userId")), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPending(c *gin.Context) {
	role := c.Query("role")
	if _, ok := nextLevel[c.GetString("role")]; ok {
		role = c.GetString("role")
	}
	resp, err := h.service.GetPending(c.Request.Context(), PendingQuery{Role: role, TeamID: c.Query("teamId")})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c, 10)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, response.Slice(resp, page, pageSize), &meta)
}

// UpdateStatus acts as the rung named by the token role. Callers whose role
// is not on the approval ladder are refused.
func (h *Handler) UpdateStatus(c *gin.Context) {
	role := c.GetString("role")
	if _, ok := nextLevel[role]; !ok {
		h.writeServiceError(c, leaveerrors.ErrNotAnApprover)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave status validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	req.Role = role

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, StatusUpdateResponse{Leave: resp}, nil)
}
