package response

import (
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

// List sends one page of a paginated result.
func List[T any](c *gin.Context, message string, r *pagination.Result[T]) {
	Paginated(c, message, r.Items, Pagination{
		Page:  r.Page,
		Limit: r.Limit,
		Total: r.Total,
		Pages: r.Pages(),
	})
}

// BindError reports a failed ShouldBind* call as field-level validation
// errors where possible.
func BindError(c *gin.Context, err error) {
	FromError(c, "invalid request", validation.Translate(err))
}
