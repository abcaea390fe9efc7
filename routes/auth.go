package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, svc *auth.Service) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", svc.Register(db))
		authGroup.POST("/login", svc.Login(db))
		authGroup.POST("/logout", svc.Logout())
		authGroup.GET("/check", svc.Check())
	}
}
