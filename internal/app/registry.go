package app

import (
	"github.com/Fritz24/Remunera/internal/attendance"
	"github.com/Fritz24/Remunera/internal/benefit"
	"github.com/Fritz24/Remunera/internal/messaging/kafka"
	"github.com/Fritz24/Remunera/internal/middleware"
	"github.com/Fritz24/Remunera/internal/payroll"
	"github.com/Fritz24/Remunera/internal/position"
	"github.com/Fritz24/Remunera/internal/rbac"
	"github.com/Fritz24/Remunera/internal/rbac/infra"
	"github.com/Fritz24/Remunera/internal/rbac/rbac_http"
	"github.com/Fritz24/Remunera/internal/report"
	"github.com/Fritz24/Remunera/internal/salarystructure"
	"github.com/Fritz24/Remunera/internal/shared/counter"
	"github.com/Fritz24/Remunera/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	benefitRepo := benefit.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(db)
	positionRepo := position.NewRepository(db)
	reportRepo := report.NewRepository(db)
	salaryRepo := salarystructure.NewRepository(db)
	staffRepo := staff.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	benefitService := benefit.NewService(db, benefitRepo)
	payrollService := payroll.NewServiceWithLocker(db, payrollRepo, outboxRepo, rdb)
	positionService := position.NewService(positionRepo, rdb)
	reportService := report.NewService(reportRepo)
	salaryService := salarystructure.NewService(db, salaryRepo)
	staffService := staff.NewService(db, staffRepo, counterRepo, rdb)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	benefitHandler := benefit.NewHandler(benefitService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	positionHandler := position.NewHandler(positionService)
	rbacHandler := rbac.NewHandler(rbacService)
	reportHandler := report.NewHandler(reportService)
	salaryHandler := salarystructure.NewHandler(salaryService)
	staffHandler := staff.NewHandler(staffService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		benefit.RegisterRoutes(api, benefitHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		position.RegisterRoutes(api, positionHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		salarystructure.RegisterRoutes(api, salaryHandler, rbacService)
		staff.RegisterRoutes(api, staffHandler, rbacService)

		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
