package salecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type recordSaleRequest struct {
	Items []SaleLine `json:"items"`
}

// RecordSaleHandler handles POST /sales. Validation failures caught before
// any write answer 400; failures inside the transaction (missing product,
// insufficient stock, write errors) roll everything back and answer 500
// with the triggering message.
func RecordSaleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		saleID, err := RecordSale(db, req.Items)
		if err != nil {
			if errors.Is(err, ErrNoItems) || errors.Is(err, ErrInvalidSaleItem) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "saleId": saleID})
	}
}
