package worksession

import (
	"net/http"
	"strconv"
	"time"

	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"
	wserrors "go-crm/internal/worksession/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("worksession.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worksession.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("work session request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// actor prefers the token identity over a body-supplied user id.
func actor(c *gin.Context, fallback string) string {
	if id := c.GetString("user_id_validated"); id != "" {
		return id
	}
	return fallback
}

func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Start(c.Request.Context(), actor(c, req.UserID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": resp}, nil)
}

func (h *Handler) Stop(c *gin.Context) {
	var req StopRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.SessionID == "" {
		req.UserID = actor(c, req.UserID)
	}

	resp, err := h.service.Stop(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": resp}, nil)
}

func (h *Handler) SaveEOD(c *gin.Context) {
	var req EODRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SaveEOD(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": resp}, nil)
}

func (h *Handler) TodayForUser(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TodayAll(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), "")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func parseBound(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (h *Handler) Range(c *gin.Context) {
	from := c.DefaultQuery("from", c.Query("start"))
	to := c.DefaultQuery("to", c.Query("end"))
	start, end := parseBound(from), parseBound(to)
	if start.IsZero() || end.IsZero() {
		h.writeServiceError(c, wserrors.ErrRangeRequired)
		return
	}
	if len(to) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	resp, err := h.service.Range(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MonthlyAttendance(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	resp, err := h.service.MonthlyAttendance(c.Request.Context(), c.Param("userId"), year, time.Month(month))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
