package onboarding

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/onboarding",
		middleware.RateLimitByIP(1, 3),
		handler.Submit,
	)
	r.PATCH("/submissions/:id",
		middleware.RateLimitByIP(2, 5),
		handler.UpdateSubmission,
	)
}
