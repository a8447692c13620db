package payroll

import (
	"github.com/Fritz24/Remunera/internal/middleware"
	"github.com/Fritz24/Remunera/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	runs.Use(middleware.ExtractUserID())
	{
		runs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)
		runs.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetById,
		)
		runs.GET("/:id/payslips",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetPayslips,
		)
		if redisClient != nil {
			runs.POST("",
				middleware.RateLimitByUser(0.1, 1),
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				handler.Run,
			)
		} else {
			runs.POST("",
				middleware.RateLimitByUser(0.1, 1),
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				handler.Run,
			)
		}
		runs.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "approve"),
			handler.SetStatus,
		)
	}
}
