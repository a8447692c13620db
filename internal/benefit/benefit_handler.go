package benefit

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
	l := zap.L().Named("benefit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("benefit request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindCreate(c *gin.Context) (CreateBenefitRequest, bool) {
	var req CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create benefit validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", apperror.MapValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) bindUpdate(c *gin.Context) (UpdateBenefitRequest, bool) {
	var req UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update benefit validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", apperror.MapValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) bindSync(c *gin.Context) (SyncAssignmentsRequest, bool) {
	var req SyncAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http sync assignments validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", apperror.MapValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) CreateAllowance(c *gin.Context) {
	req, ok := h.bindCreate(c)
	if !ok {
		return
	}
	resp, err := h.service.CreateAllowance(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListAllowances(c *gin.Context) {
	resp, err := h.service.ListAllowances(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateAllowance(c *gin.Context) {
	req, ok := h.bindUpdate(c)
	if !ok {
		return
	}
	resp, err := h.service.UpdateAllowance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteAllowance(c *gin.Context) {
	if err := h.service.DeleteAllowance(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreateDeduction(c *gin.Context) {
	req, ok := h.bindCreate(c)
	if !ok {
		return
	}
	resp, err := h.service.CreateDeduction(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListDeductions(c *gin.Context) {
	resp, err := h.service.ListDeductions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateDeduction(c *gin.Context) {
	req, ok := h.bindUpdate(c)
	if !ok {
		return
	}
	resp, err := h.service.UpdateDeduction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteDeduction(c *gin.Context) {
	if err := h.service.DeleteDeduction(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) SyncStaffAllowances(c *gin.Context) {
	req, ok := h.bindSync(c)
	if !ok {
		return
	}
	resp, err := h.service.SyncStaffAllowances(c.Request.Context(), c.Param("staffId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SyncStaffDeductions(c *gin.Context) {
	req, ok := h.bindSync(c)
	if !ok {
		return
	}
	resp, err := h.service.SyncStaffDeductions(c.Request.Context(), c.Param("staffId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStaffBenefits(c *gin.Context) {
	resp, err := h.service.GetStaffBenefits(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
