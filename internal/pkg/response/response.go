// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       interface{}          `json:"data,omitempty"`
	Error      string               `json:"error,omitempty"`
	Errors     []xerrors.FieldError `json:"errors,omitempty"`
	Pagination *Pagination          `json:"pagination,omitempty"`
}

// Pagination describes an offset-paginated result page.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated sends a list page together with its pagination metadata.
func Paginated(c *gin.Context, message string, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error, data ...interface{}) {
	// Abort first so no later handler writes a second body
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}

	if err != nil {
		resp.Error = err.Error()
		_ = c.Error(err)
	}

	if len(data) > 0 {
		resp.Data = data[0]
	}

	c.JSON(code, resp)
}

// Validation sends a 400 with every failing field.
func Validation(c *gin.Context, ve *xerrors.ValidationError) {
	c.Abort()
	_ = c.Error(ve)
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "validation failed",
		Errors:  ve.Fields,
	})
}

// FromError maps an application error onto the HTTP taxonomy. Internal
// failures are reported with a generic message; the cause is kept on the
// gin context for the logging middleware.
func FromError(c *gin.Context, message string, err error) {
	if ve, ok := xerrors.AsValidation(err); ok {
		Validation(c, ve)
		return
	}

	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		c.Abort()
		_ = c.Error(err)
		c.JSON(status, Response{
			Success: false,
			Message: message,
			Error:   xerrors.ErrInternal.Error(),
		})
		return
	}

	Error(c, status, message, err)
}

// StatusFor returns the HTTP status for an application error.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, xerrors.ErrInvalidInput), errors.Is(err, xerrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, xerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, xerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, xerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, xerrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, xerrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, xerrors.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, xerrors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string, err error) {
	Error(c, http.StatusUnauthorized, message, err)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
