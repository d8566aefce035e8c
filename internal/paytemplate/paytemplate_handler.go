package paytemplate

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

func (h *Handler) Get(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))

	if strings.EqualFold(c.Query("format"), "csv") {
		filename, body, err := h.service.ExportSectionCSV(c.Request.Context(), month, c.Query("section"))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.CSV(c, filename, body)
		return
	}

	res, err := h.service.Get(c.Request.Context(), month)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
