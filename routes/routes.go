package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/auth"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, Product,
// and Sale route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, svc *auth.Service) {
	SetupAuthRoutes(r, db, svc)
	SetupProductRoutes(r, db, svc)
	SetupSaleRoutes(r, db, svc)
}
