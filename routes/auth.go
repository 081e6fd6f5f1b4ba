package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/auth"
	"github.com/ismailkendil058/albadr-api/middleware"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the staff login endpoints shared by all three
// dashboards. Login is rate-limited per IP.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	limiter := middleware.NewRateLimiter()

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", limiter.Limit(), auth.LoginHandler(db))
		authGroup.GET("/me",
			middleware.RequireRole(models.RoleSuperadmin, models.RoleManager, models.RoleEmployee),
			auth.MeHandler(db))
	}
}
