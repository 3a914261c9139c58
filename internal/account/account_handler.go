package account

import (
	"net/http"

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
	l := zap.L().Named("account.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("account request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// viewer resolves whose accounts a listing may show. Employees are pinned to
// themselves, other roles may narrow by the userId/role query.
func viewer(c *gin.Context) (userID, role string) {
	role = c.GetString("role")
	userID = c.GetString("user_id_validated")
	if role == roleEmployee {
		return userID, role
	}
	if q := c.Query("role"); q != "" {
		role = q
	}
	if q := c.Query("userId"); q != "" {
		userID = q
	}
	return userID, role
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPaginated(c *gin.Context) {
	page, pageSize := response.PageParams(c, 10)
	userID, role := viewer(c)

	resp, total, err := h.service.GetPaginated(c.Request.Context(), ListQuery{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		UserID:    userID,
		Role:      role,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Paged(c, resp, total, page, pageSize)
}

func (h *Handler) GetCounts(c *gin.Context) {
	userID, role := viewer(c)
	resp, err := h.service.GetCounts(c.Request.Context(), userID, role)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) byStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.GetByStatus(c.Request.Context(), status)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) GetCustomers(c *gin.Context) {
	h.byStatus(StatusCustomer)(c)
}

func (h *Handler) GetActiveLeads(c *gin.Context) {
	h.byStatus(StatusActive)(c)
}

func (h *Handler) GetQuotations(c *gin.Context) {
	h.byStatus(StatusQuotations)(c)
}

func (h *Handler) GetLeadsBySource(c *gin.Context) {
	resp, err := h.service.GetLeadsBySource(c.Request.Context(), c.Param("sourceType"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	resp, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Account status set to Closed", "account": resp}, nil)
}

func (h *Handler) BulkUpdateStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	n, err := h.service.BulkUpdateStatus(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BulkStatusResponse{Message: "Bulk update successful", UpdatedCount: n}, nil)
}

func (h *Handler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	notes, err := h.service.AddNote(c.Request.Context(), c.Param("id"), req, c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Note added successfully", "notes": notes}, nil)
}

func (h *Handler) GetFollowUps(c *gin.Context) {
	resp, err := h.service.GetFollowUps(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddFollowUp(c *gin.Context) {
	var req FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddFollowUp(c.Request.Context(), c.Param("id"), req, c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Follow-up added successfully", "followUps": resp}, nil)
}

func (h *Handler) UpdateFollowUp(c *gin.Context) {
	var req FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateFollowUp(c.Request.Context(), c.Param("id"), c.Param("followUpId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Follow-up updated", "followUps": resp}, nil)
}

func (h *Handler) DeleteFollowUp(c *gin.Context) {
	resp, err := h.service.DeleteFollowUp(c.Request.Context(), c.Param("id"), c.Param("followUpId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Follow-up deleted", "followUps": resp}, nil)
}
