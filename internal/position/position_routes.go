package position

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
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	positions.Use(middleware.ExtractUserID())
	{
		positions.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "position", "read"),
			handler.GetAll,
		)
		positions.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "position", "read"),
			handler.GetById,
		)
		positions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "position", "create"),
			handler.Create,
		)
		positions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "position", "update"),
			handler.Update,
		)
		positions.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "position", "delete"),
			handler.Delete,
		)
	}
}
