package models

import "time"

// Sale is an append-only header: immutable after creation except for
// full deletion, which cascades to its items.
type Sale struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Ref        string     `gorm:"uniqueIndex" json:"ref"`
	TotalCents int64      `gorm:"not null" json:"total_cents"`
	CreatedAt  time.Time  `json:"created_at"`
	Items      []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// SaleItem holds a weak reference to its product: the price is a snapshot
// taken at sale time, and the product row may be deleted afterwards without
// touching the item.
type SaleItem struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	SaleID     uint  `gorm:"index;not null" json:"sale_id"`
	ProductID  uint  `gorm:"not null" json:"product_id"`
	Quantity   int   `gorm:"not null" json:"quantity"`
	PriceCents int64 `gorm:"not null" json:"price_cents"`
}
