package offboarding

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.POST("/:id/offboarding",
			middleware.RateLimitByIP(1, 3),
			handler.Schedule,
		)
		employees.DELETE("/:id/offboarding",
			middleware.RateLimitByIP(1, 3),
			handler.Cancel,
		)
	}
}
