package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point wiring the public storefront,
// auth, and role-scoped back-office route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront (no middleware)
	SetupPublicRoutes(r, db)

	// Staff login + session
	SetupAuthRoutes(r, db)

	// Role-scoped back office (JWT-protected)
	SetupAdminRoutes(r, db)
}
