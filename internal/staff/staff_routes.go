package staff

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
	staffs := r.Group("/staff")
	staffs.Use(middleware.AuthMiddleware())
	staffs.Use(middleware.ExtractUserID())
	{
		staffs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetAll,
		)
		staffs.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetOptions,
		)
		staffs.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "staff", "read"),
			handler.GetById,
		)
		staffs.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "staff", "create"),
			handler.Create,
		)
		staffs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "staff", "update"),
			handler.Update,
		)
		staffs.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "staff", "delete"),
			handler.Delete,
		)
	}
}
