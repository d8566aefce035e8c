package employee

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("/:id/full", handler.GetFull)
		employees.GET("/:id/history", handler.GetHistory)
		employees.PATCH("/:id/update",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)
		employees.PATCH("/:id/status",
			middleware.RateLimitByIP(1, 3),
			handler.UpdateStatus,
		)
	}
}
