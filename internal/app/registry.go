package app

import (
	"database/sql"
	"os"

	"hradmin/internal/dashboard"
	"hradmin/internal/employee"
	"hradmin/internal/eobi"
	"hradmin/internal/messaging/kafka"
	"hradmin/internal/middleware"
	"hradmin/internal/offboarding"
	"hradmin/internal/onboarding"
	"hradmin/internal/opd"
	"hradmin/internal/paytemplate"
	"hradmin/internal/salary"
	"hradmin/internal/tax"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	offboardingRepo := offboarding.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	eobiRepo := eobi.NewRepository(gormDB)
	opdRepo := opd.NewRepository(gormDB)
	taxRepo := tax.NewRepository(gormDB)
	payTemplateRepo := paytemplate.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(employeeRepo, outboxRepo)
	offboardingService := offboarding.NewService(offboardingRepo)
	salaryService := salary.NewService(salaryRepo)
	eobiService := eobi.NewService(eobiRepo)
	opdService := opd.NewService(opdRepo)
	taxService := tax.NewService(taxRepo)
	payTemplateService := paytemplate.NewService(payTemplateRepo)
	onboardingService := onboarding.NewServiceWithOutbox(onboardingRepo, outboxRepo)

	var cache redis.Cmdable
	if rdb != nil {
		cache = rdb
	}
	dashboardService := dashboard.NewService(dashboardRepo, cache)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	offboardingHandler := offboarding.NewHandler(offboardingService)
	salaryHandler := salary.NewHandler(salaryService)
	eobiHandler := eobi.NewHandler(eobiService)
	opdHandler := opd.NewHandler(opdService)
	taxHandler := tax.NewHandler(taxService)
	payTemplateHandler := paytemplate.NewHandler(payTemplateService)
	onboardingHandler := onboarding.NewHandler(onboardingService, os.Getenv("UPLOAD_DIR"))
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		offboarding.RegisterRoutes(api, offboardingHandler)
		salary.RegisterRoutes(api, salaryHandler)
		eobi.RegisterRoutes(api, eobiHandler)
		opd.RegisterRoutes(api, opdHandler)
		tax.RegisterRoutes(api, taxHandler)
		paytemplate.RegisterRoutes(api, payTemplateHandler)
		onboarding.RegisterRoutes(api, onboardingHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
