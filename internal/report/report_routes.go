package report

import (
	"github.com/Fritz24/Remunera/internal/middleware"
	"github.com/Fritz24/Remunera/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ExtractUserID())
	reports.Use(middleware.RateLimitByUser(3, 10))
	{
		reports.GET("/allowances", middleware.RBACAuthorize(rbacService, "report", "read"), handler.Allowances)
		reports.GET("/deductions", middleware.RBACAuthorize(rbacService, "report", "read"), handler.Deductions)
		reports.GET("/monthly-summary", middleware.RBACAuthorize(rbacService, "report", "read"), handler.MonthlySummary)
		reports.GET("/position-payroll", middleware.RBACAuthorize(rbacService, "report", "read"), handler.PositionPayroll)
	}
}
