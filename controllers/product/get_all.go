package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

// GetProducts lists active products: in stock and not soft-deleted,
// ordered by id ascending. Sold-out and retired products never appear here.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("stock > 0").Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
