package eobi

import (
	"net/http"

	"hradmin/internal/shared/listing"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	f, csvExport := listing.FromQuery(c)

	if csvExport {
		filename, body, err := h.service.ExportCSV(c.Request.Context(), f)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.CSV(c, filename, body)
		return
	}

	res, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Fail(c, err)
		return
	}
	page := 1
	if f.Limit > 0 {
		page = f.Offset/f.Limit + 1
	}
	meta := response.NewPaginationMeta(res.Total, page, f.Limit)
	response.Success(c, http.StatusOK, res, &meta)
}
