package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FRName        string  `gorm:"not null" json:"fr_name"` // French name
	ARName        string  `json:"ar_name"`                 // Arabic name
	FRDescription string  `json:"fr_description"`
	ARDescription string  `json:"ar_description"`
	Price         float64 `gorm:"not null" json:"price"`
	OriginalPrice float64 `json:"original_price"` // struck-through price, 0 when absent
	Image         string  `gorm:"not null" json:"image"`
	Featured      bool    `json:"featured"`
	BestSeller    bool    `json:"best_seller"`
	IsNew         bool    `gorm:"column:is_new" json:"is_new"`
	Promo         bool    `json:"promo"`
	Stock         int     `json:"stock"`
	HasWeights    bool    `json:"has_weights"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	Weights []ProductWeight `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"weights,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductWeight is an alternate unit size of a product ("100g", "250g", ...)
// whose price replaces the product price when the customer selects it.
type ProductWeight struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Label     string  `gorm:"not null" json:"label"`
	Price     float64 `gorm:"not null" json:"price"`
	Position  int     `json:"position"`
}

// EffectiveUnitPrice returns the price a line is charged at: the selected
// weight variant's price when one is chosen, else the product price.
func EffectiveUnitPrice(p Product, w *ProductWeight) float64 {
	if w != nil {
		return w.Price
	}
	return p.Price
}
