package attendance

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
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.ExtractUserID())
	{
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)
		attendances.POST("/upload",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			handler.Upload,
		)
	}
}
