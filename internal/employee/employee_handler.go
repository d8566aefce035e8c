package employee

import (
	"net/http"

	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetFull(c *gin.Context) {
	resp, err := h.service.GetFull(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	resp, err := h.service.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Update serves both single and bulk updates; the body shape decides which.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req UpdatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MapValidationError(err))
		return
	}

	if len(req.Updates) > 0 {
		resp, err := h.service.UpdateFields(ctx, id, req.Updates, req.Reason)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	if req.Field == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Either field or updates is required", nil)
		return
	}

	resp, err := h.service.UpdateField(ctx, id, req.Field, req.NewValue, req.Reason)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
