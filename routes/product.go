package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/auth"
	productcontroller "github.com/jbook26/inventory-api/controllers/product"
	"github.com/jbook26/inventory-api/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products" endpoints. Listing is public;
// mutations require a session.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, svc *auth.Service) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))

		protected := products.Group("")
		protected.Use(middleware.RequireSession(svc))
		{
			protected.POST("", productcontroller.CreateProduct(db))
			protected.PUT("", productcontroller.UpdateProduct(db))
			protected.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
