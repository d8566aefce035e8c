package app

import (
	"os"

	"hradmin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module behind the
// router. The warehouse handle is opened once here and shared.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectWarehouseWithRetry(
		os.Getenv("WAREHOUSE_HOST"),
		os.Getenv("WAREHOUSE_USER"),
		os.Getenv("WAREHOUSE_PASSWORD"),
		os.Getenv("WAREHOUSE_NAME"),
		os.Getenv("WAREHOUSE_PORT"),
		os.Getenv("WAREHOUSE_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		redisClient = nil
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}
