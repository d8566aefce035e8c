package dashboard

import (
	"net/http"
	"strings"

	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))

	res, err := h.service.Summary(c.Request.Context(), month)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
