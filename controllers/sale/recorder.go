package salecontroller

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbook26/inventory-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleLine is one requested line of a sale. PriceCents is the caller's
// declared unit price and is recorded as the line's snapshot.
type SaleLine struct {
	ProductID  uint  `json:"product_id"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

var (
	ErrNoItems         = errors.New("no sale items provided")
	ErrInvalidSaleItem = errors.New("invalid sale item data")
)

// InsufficientStockError reports a line that asked for more than is on hand.
type InsufficientStockError struct {
	ProductID uint
	Stock     int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d: current %d, requested %d",
		e.ProductID, e.Stock, e.Requested)
}

// ProductNotFoundError reports a line referencing a missing product.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// RecordSale atomically records a sale: one header, one item per line, and a
// stock decrement per line. Lines are processed in submission order, so a
// product appearing twice sees the earlier line's decrement. Each product is
// read under a row-level exclusive lock so concurrent sales against the same
// product serialize; the stock check and the decrement use that single locked
// read, which keeps stock from ever going negative. Any failure rolls the
// whole operation back: a sale is either fully recorded or nothing exists.
func RecordSale(db *gorm.DB, lines []SaleLine) (uint, error) {
	if len(lines) == 0 {
		return 0, ErrNoItems
	}

	// Static validation and the immutable total, before any writes.
	var total int64
	for _, l := range lines {
		if l.ProductID == 0 || l.Quantity <= 0 || l.PriceCents < 0 {
			return 0, ErrInvalidSaleItem
		}
		total += int64(l.Quantity) * l.PriceCents
	}

	sale := models.Sale{Ref: generateSaleRef(), TotalCents: total}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, l := range lines {
			// Unscoped so a sold-out (soft-deleted) product fails the
			// stock check rather than looking absent.
			var product models.Product
			if err := tx.Unscoped().
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, l.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: l.ProductID}
				}
				return err
			}

			if product.Stock < l.Quantity {
				return &InsufficientStockError{
					ProductID: product.ID,
					Stock:     product.Stock,
					Requested: l.Quantity,
				}
			}

			product.Stock -= l.Quantity
			if product.Stock == 0 && !product.DeletedAt.Valid {
				// Selling out retires the product from active listings
				// in the same transaction.
				product.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			}
			if err := tx.Unscoped().Save(&product).Error; err != nil {
				return err
			}

			item := models.SaleItem{
				SaleID:     sale.ID,
				ProductID:  l.ProductID,
				Quantity:   l.Quantity,
				PriceCents: l.PriceCents,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

func generateSaleRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
