package onboarding

import (
	"net/http"
	"path/filepath"
	"strings"

	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service   Service
	uploadDir string
}

func NewHandler(service Service, uploadDir string) *Handler {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &Handler{service: service, uploadDir: uploadDir}
}

func (h *Handler) Submit(c *gin.Context) {
	payload, _, err := h.parseBody(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	res, err := h.service.Submit(c.Request.Context(), payload)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateSubmission(c *gin.Context) {
	payload, attachments, err := h.parseBody(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	res, err := h.service.UpdateSubmission(c.Request.Context(), c.Param("id"), payload, attachments)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// parseBody accepts either a JSON object or a multipart form. Multipart file
// parts named after an attachment slot are saved and returned as slot paths;
// everything else becomes a payload field.
func (h *Handler) parseBody(c *gin.Context) (map[string]any, map[string]string, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, apperror.New(apperror.CodeInvalidInput, "Invalid multipart form", http.StatusBadRequest)
		}

		payload := map[string]any{}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				payload[key] = vals[0]
			}
		}

		attachments := map[string]string{}
		for _, slot := range AttachmentSlots {
			files := form.File[slot]
			if len(files) == 0 {
				continue
			}
			file := files[0]
			dest := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dest); err != nil {
				return nil, nil, apperror.Wrap(err, apperror.CodeInternalError, "Storing attachment failed", http.StatusInternalServerError)
			}
			attachments[slot] = dest
		}
		return payload, attachments, nil
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, nil, apperror.New(apperror.CodeInvalidInput, "Invalid request body", http.StatusBadRequest)
	}
	return payload, nil, nil
}
