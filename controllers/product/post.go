package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
)

type productRequest struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// validate trims the name and rejects missing or negative fields.
// A non-empty errMsg means the request is invalid.
func (r *productRequest) validate() (name, errMsg string) {
	name = strings.TrimSpace(r.Name)
	if name == "" {
		return "", "Product name is required"
	}
	if r.Price < 0 {
		return "", "Price must not be negative"
	}
	if r.Stock < 0 {
		return "", "Stock must not be negative"
	}
	return name, ""
}

// CreateProduct creates a new product. Price arrives in major units and is
// stored as integer cents.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		name, errMsg := req.validate()
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}

		product := models.Product{
			Name:       name,
			PriceCents: models.ToCents(req.Price),
			Stock:      req.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
