package salarystructure

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
	salaries := r.Group("/salary-structures")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ExtractUserID())
	{
		salaries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetAll,
		)
		salaries.GET("/staff/:staffId/active",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetActiveByStaff,
		)
		salaries.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "salary", "create"),
			handler.Assign,
		)
	}
}
