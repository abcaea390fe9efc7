package salecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

// SaleItemView is one line of a sale as displayed: quantity and the price
// snapshot, with the product name resolved at read time.
type SaleItemView struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// GetSales lists sale headers, newest first.
func GetSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sale
		if err := db.Order("created_at DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GetSaleByID returns one sale header plus its line items. Items join the
// product table for the display name; a hard-deleted product falls back to
// "(deleted)" so historical sales stay readable.
func GetSaleByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := models.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id"})
			return
		}

		var sale models.Sale
		if err := db.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sale details"})
			}
			return
		}

		var items []SaleItemView
		err = db.Table("sale_items").
			Select("COALESCE(products.name, '(deleted)') AS name, sale_items.quantity, sale_items.price_cents").
			Joins("LEFT JOIN products ON products.id = sale_items.product_id").
			Where("sale_items.sale_id = ?", id).
			Scan(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sale details"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"sale": sale, "items": items})
	}
}
