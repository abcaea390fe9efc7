package salecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

// DeleteSale removes a sale and its line items in one transaction. Stock is
// deliberately left alone: deleting the record does not undo the sale.
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := models.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
				return err
			}
			res := tx.Delete(&models.Sale{}, id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
	}
}
