package benefit

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
	allowances := r.Group("/allowances")
	allowances.Use(middleware.AuthMiddleware())
	allowances.Use(middleware.ExtractUserID())
	{
		allowances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "benefit", "read"),
			handler.ListAllowances,
		)
		allowances.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "create"),
			handler.CreateAllowance,
		)
		allowances.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "update"),
			handler.UpdateAllowance,
		)
		allowances.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "benefit", "delete"),
			handler.DeleteAllowance,
		)
	}

	deductions := r.Group("/deductions")
	deductions.Use(middleware.AuthMiddleware())
	deductions.Use(middleware.ExtractUserID())
	{
		deductions.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "benefit", "read"),
			handler.ListDeductions,
		)
		deductions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "create"),
			handler.CreateDeduction,
		)
		deductions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "update"),
			handler.UpdateDeduction,
		)
		deductions.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "benefit", "delete"),
			handler.DeleteDeduction,
		)
	}

	staffBenefits := r.Group("/staff-benefits/:staffId")
	staffBenefits.Use(middleware.AuthMiddleware())
	staffBenefits.Use(middleware.ExtractUserID())
	{
		staffBenefits.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "benefit", "read"),
			handler.GetStaffBenefits,
		)
		staffBenefits.PUT("/allowances",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "update"),
			handler.SyncStaffAllowances,
		)
		staffBenefits.PUT("/deductions",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "benefit", "update"),
			handler.SyncStaffDeductions,
		)
	}
}
