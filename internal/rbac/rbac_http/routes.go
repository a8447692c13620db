package rbac_http

import (
	"github.com/Fritz24/Remunera/internal/middleware"
	"github.com/Fritz24/Remunera/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, service rbac.Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ExtractUserID())
	{
		group.POST("/enforce", middleware.RateLimitByUser(10, 30), handler.Enforce)

		// Policy management is gated by the static admin role from the
		// token, not by the stored policy itself; otherwise an empty
		// role_permission table would lock everyone out of fixing it.
		group.GET("/roles",
			middleware.RateLimitByUser(3, 10),
			middleware.RoleMiddleware("admin"),
			handler.ListRoles,
		)
		group.GET("/roles/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RoleMiddleware("admin"),
			handler.GetRole,
		)
		group.POST("/roles",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin"),
			handler.CreateRole,
		)
		group.PUT("/roles/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin"),
			handler.UpdateRole,
		)
		group.DELETE("/roles/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RoleMiddleware("admin"),
			handler.DeleteRole,
		)
		group.PUT("/roles/:id/permissions",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin"),
			handler.UpdateRolePermissions,
		)

		group.GET("/permissions",
			middleware.RateLimitByUser(3, 10),
			middleware.RoleMiddleware("admin"),
			handler.ListPermissions,
		)
	}
}
