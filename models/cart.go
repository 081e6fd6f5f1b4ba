package models

import "time"

// GuestCart keeps a storefront visitor's cart across sessions, keyed by the
// opaque guest id the client stores locally.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"`
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GuestCartItem is one cart line. Line identity is the composite
// (product id, weight id) — the same product at two different weights is
// two distinct lines, and removal uses the same key as merging.
type GuestCartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"index;uniqueIndex:idx_cart_line" json:"cart_id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_cart_line" json:"product_id"`
	WeightID      uint      `gorm:"uniqueIndex:idx_cart_line" json:"weight_id"` // 0 = base price, no variant
	FRName        string    `json:"fr_name"`
	ARName        string    `json:"ar_name"`
	Image         string    `json:"image"`
	WeightLabel   string    `json:"weight_label"`
	UnitPrice     float64   `json:"unit_price"`
	OriginalPrice float64   `json:"original_price"`
	Stock         int       `json:"stock"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

// SameLine reports whether the item is the cart line identified by the
// composite (product id, weight id) key.
func (i GuestCartItem) SameLine(productID, weightID uint) bool {
	return i.ProductID == productID && i.WeightID == weightID
}

// CartSubtotal sums unit price × quantity over all lines.
func CartSubtotal(items []GuestCartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}
