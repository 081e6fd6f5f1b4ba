package models

import "time"

// The two physical stores. StoreOrder fixes the comparison order for
// delivery quotes: on an exact price tie the earlier store wins.
const (
	StoreAlger = "alger"
	StoreSetif = "setif"
)

var StoreOrder = []string{StoreAlger, StoreSetif}

func ValidStore(s string) bool {
	for _, store := range StoreOrder {
		if s == store {
			return true
		}
	}
	return false
}

// ValidWilaya reports whether code is one of Algeria's 58 wilayas.
func ValidWilaya(code int) bool {
	return code >= 1 && code <= 58
}

// Tariff holds one store's delivery prices for one wilaya. At most one row
// may exist per (store, wilaya) pair.
type Tariff struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Store       string  `gorm:"not null;uniqueIndex:idx_tariff_store_wilaya" json:"store"`
	WilayaCode  int     `gorm:"not null;uniqueIndex:idx_tariff_store_wilaya" json:"wilaya_code"`
	WilayaName  string  `json:"wilaya_name"`
	HomePrice   float64 `json:"home_price"`
	BureauPrice float64 `json:"bureau_price"`
	ReturnFee   float64 `json:"return_fee"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
