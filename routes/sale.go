package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/auth"
	salecontroller "github.com/jbook26/inventory-api/controllers/sale"
	"github.com/jbook26/inventory-api/middleware"
	"gorm.io/gorm"
)

// SetupSaleRoutes registers all "/sales" endpoints. Reads are public;
// recording and deletion require a session.
func SetupSaleRoutes(r *gin.Engine, db *gorm.DB, svc *auth.Service) {
	sales := r.Group("/sales")
	{
		sales.GET("", salecontroller.GetSales(db))
		sales.GET("/:id", salecontroller.GetSaleByID(db))

		protected := sales.Group("")
		protected.Use(middleware.RequireSession(svc))
		{
			protected.POST("", salecontroller.RecordSaleHandler(db))
			protected.DELETE("/:id", salecontroller.DeleteSale(db))
		}
	}
}
