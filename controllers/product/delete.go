package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product row for good. Historical sale items keep
// their non-owning reference and fall back to a placeholder name on display.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := models.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}

		res := db.Unscoped().Delete(&models.Product{}, id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
