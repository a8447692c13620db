package report

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
	"github.com/Fritz24/Remunera/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindPeriod(c *gin.Context) (PeriodFilterRequest, bool) {
	var filter PeriodFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Warn("http report validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", apperror.MapValidationError(err))
		return filter, false
	}
	return filter, true
}

func (h *Handler) Allowances(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.Allowances(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Deductions(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.Deductions(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PositionPayroll(c *gin.Context) {
	filter, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.PositionPayroll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
