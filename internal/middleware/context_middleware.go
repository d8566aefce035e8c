package middleware

import (
	"hradmin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger and the acting user to the
// standard context. The actor comes from the X-Actor header the admin UI
// forwards; audit rows record it as Updated_By.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		actor := c.GetHeader("X-Actor")
		if actor == "" {
			actor = "HR Admin Portal"
		}
		c.Set("actor", actor)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("actor", actor),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithActor(ctx, actor)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
