package models

import (
	"errors"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductOutOfStock ProductStatus = "out_of_stock"
	ProductDeleted    ProductStatus = "deleted"
)

type Product struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	PriceCents int64          `gorm:"not null" json:"price_cents"`
	Stock      int            `gorm:"not null;default:0" json:"stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Status derives the product's lifecycle state. A sold-out product carries
// both stock == 0 and a deletion timestamp (set by the sale recorder); an
// explicitly retired product may still hold stock.
func (p *Product) Status() ProductStatus {
	switch {
	case p.DeletedAt.Valid && p.Stock > 0:
		return ProductDeleted
	case p.Stock <= 0:
		return ProductOutOfStock
	default:
		return ProductActive
	}
}

// ToCents converts a major-unit price to integer minor units,
// rounding half away from zero.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// ErrInvalidID is returned by ParseID for non-positive or non-integral input.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a route or body identifier into a strict positive integer.
// All handlers go through this so malformed ids are rejected uniformly.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
