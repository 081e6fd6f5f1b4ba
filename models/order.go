package models

import "time"

type OrderStatus string
type DeliveryType string

const (
	// Order lifecycle. New orders may be confirmed then delivered, or
	// diverted to canceled/returned at any point.
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusReturned  OrderStatus = "returned"

	DeliveryHome   DeliveryType = "home"   // courier to the customer's address
	DeliveryBureau DeliveryType = "bureau" // courier's local office
	DeliveryPickup DeliveryType = "pickup" // customer collects in store, free
)

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex;not null" json:"order_ref"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerPhone string `gorm:"not null" json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	WilayaCode   int          `json:"wilaya_code"`
	WilayaName   string       `json:"wilaya_name"`
	Address      string       `json:"address"`
	DeliveryType DeliveryType `gorm:"type:VARCHAR(10);not null" json:"delivery_type"`
	Store        string       `json:"store"` // fulfilling store, or the pickup location
	PickupDate   *time.Time   `json:"pickup_date,omitempty"`

	Subtotal      float64 `json:"subtotal"`
	DeliveryPrice float64 `json:"delivery_price"`
	Total         float64 `json:"total"` // always subtotal + delivery price

	Status OrderStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	Notes  string      `json:"notes"`
	Manual bool        `json:"manual"` // entered by staff, not the storefront

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem snapshots the product at order time so history stays readable
// after products are edited or deleted.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	FRName      string  `json:"fr_name"`
	ARName      string  `json:"ar_name"`
	WeightID    uint    `json:"weight_id"` // 0 when sold at the base price
	WeightLabel string  `json:"weight_label"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"` // unit price × quantity
}
