// internal/handlers/upload/upload_handler.go
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/upload"

	"github.com/gin-gonic/gin"
)

// room for multipart headers and boundaries around the file bytes
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadService *service.UploadService
	maxBytes      int64
}

func NewUploadHandler(uploadService *service.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxBytes:      maxBytes,
	}
}

// Upload stores the single file sent in the "image" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile("image")
	if err != nil {
		formError(c, "image", err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.FromError(c, "failed to read upload", err)
		return
	}
	defer f.Close()

	result, err := h.uploadService.Save(c.Param("type"), service.Upload{Name: fh.Filename, Reader: f}, origin(c))
	if err != nil {
		response.FromError(c, "upload failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "file uploaded successfully", result)
}

// UploadMultiple stores up to ten files sent in the "images" field.
func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxFiles*h.maxBytes+multipartOverhead)

	form, err := c.MultipartForm()
	if err != nil {
		formError(c, "images", err)
		return
	}
	headers := form.File["images"]
	if len(headers) > service.MaxFiles {
		response.Validation(c, xerrors.NewValidationError("images", fmt.Sprintf("must contain at most %d files", service.MaxFiles)))
		return
	}

	uploads := make([]service.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			response.FromError(c, "failed to read upload", err)
			return
		}
		files = append(files, f)
		uploads = append(uploads, service.Upload{Name: fh.Filename, Reader: f})
	}

	result, err := h.uploadService.SaveMany(c.Param("type"), uploads, origin(c))
	if err != nil {
		response.FromError(c, "upload failed", err)
		return
	}

	response.Success(c, http.StatusCreated, fmt.Sprintf("%d files uploaded successfully", len(result)), result)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploadService.Delete(c.Param("type"), c.Param("filename")); err != nil {
		response.FromError(c, "failed to delete file", err)
		return
	}

	response.Success(c, http.StatusOK, "file deleted successfully", nil)
}

func formError(c *gin.Context, field string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		response.FromError(c, "upload failed", fmt.Errorf("%w: request body exceeds %d bytes", xerrors.ErrFileTooLarge, tooLarge.Limit))
	case errors.Is(err, http.ErrMissingFile):
		response.Validation(c, xerrors.NewValidationError(field, "is required"))
	default:
		response.FromError(c, "upload failed", fmt.Errorf("%w: %v", xerrors.ErrBadRequest, err))
	}
}

// origin honours X-Forwarded-Proto from a fronting proxy.
func origin(c *gin.Context) service.Origin {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return service.Origin{Scheme: scheme, Host: c.Request.Host}
}
