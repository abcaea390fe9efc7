package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by the id carried in the body.
// Updates reach soft-deleted rows too; restocking a retired product clears
// its deletion timestamp so it reappears in active listings.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if req.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		name, errMsg := req.validate()
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}

		var product models.Product
		if err := db.Unscoped().First(&product, req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}

		product.Name = name
		product.PriceCents = models.ToCents(req.Price)
		product.Stock = req.Stock
		if req.Stock > 0 {
			product.DeletedAt = gorm.DeletedAt{}
		}

		if err := db.Unscoped().Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
