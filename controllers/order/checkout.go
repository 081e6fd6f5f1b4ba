package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tariffcontroller "github.com/ismailkendil058/albadr-api/controllers/tariff"
	"github.com/ismailkendil058/albadr-api/metrics"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	WeightID  uint `json:"weight_id"` // 0 = base price
	Quantity  int  `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	WilayaCode   int    `json:"wilaya_code"`
	WilayaName   string `json:"wilaya_name"`
	Address      string `json:"address"`
	DeliveryType string `json:"delivery_type"`
	PickupStore  string `json:"pickup_store"`
	PickupDate   string `json:"pickup_date"` // YYYY-MM-DD, pickup only

	Notes   string         `json:"notes"`
	GuestID string         `json:"guest_id"` // cart to clear on success
	Items   []CheckoutItem `json:"items"`
}

const pickupDateLayout = "2006-01-02"

// validateCheckout enforces the submission invariants before anything is
// written: at least one line, customer name and phone, an address for home
// delivery, and a store plus a today-or-later date for pickup.
func validateCheckout(req CheckoutRequest, today time.Time) error {
	if len(req.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return errors.New("item quantities must be positive")
		}
	}
	if req.CustomerName == "" {
		return errors.New("customer_name is required")
	}
	if req.CustomerPhone == "" {
		return errors.New("customer_phone is required")
	}

	switch models.DeliveryType(req.DeliveryType) {
	case models.DeliveryHome:
		if !models.ValidWilaya(req.WilayaCode) {
			return errors.New("wilaya_code must be between 1 and 58")
		}
		if req.Address == "" {
			return errors.New("address is required for home delivery")
		}
	case models.DeliveryBureau:
		if !models.ValidWilaya(req.WilayaCode) {
			return errors.New("wilaya_code must be between 1 and 58")
		}
	case models.DeliveryPickup:
		if !models.ValidStore(req.PickupStore) {
			return errors.New("pickup_store is required for pickup")
		}
		date, err := time.Parse(pickupDateLayout, req.PickupDate)
		if err != nil {
			return errors.New("pickup_date is required for pickup (YYYY-MM-DD)")
		}
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(day) {
			return errors.New("pickup_date cannot be in the past")
		}
	default:
		return errors.New("delivery_type must be home, bureau or pickup")
	}
	return nil
}

// orderTotals sums line totals and applies the delivery price. The grand
// total is exactly subtotal + delivery; no rounding, tax or discounts.
func orderTotals(items []models.OrderItem, deliveryPrice float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.Total
	}
	return subtotal, subtotal + deliveryPrice
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// PlaceOrder creates the order and its items in one transaction: stock is
// checked and deducted under row locks, the delivery price is resolved from
// tariffs (0 for pickup), and the guest cart is cleared — so an order can
// never be persisted without its items.
func PlaceOrder(db *gorm.DB, req CheckoutRequest, manual bool) (*models.Order, error) {
	if err := validateCheckout(req, time.Now()); err != nil {
		return nil, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem

		for _, line := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("product no longer exists")
				}
				return err
			}

			if product.Stock < line.Quantity {
				return errors.New("insufficient stock for: " + product.FRName)
			}
			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			var weight *models.ProductWeight
			if line.WeightID != 0 {
				var w models.ProductWeight
				if err := tx.Where("id = ? AND product_id = ?", line.WeightID, line.ProductID).
					First(&w).Error; err != nil {
					return errors.New("weight does not belong to product: " + product.FRName)
				}
				weight = &w
			}

			unitPrice := models.EffectiveUnitPrice(product, weight)
			item := models.OrderItem{
				ProductID: product.ID,
				FRName:    product.FRName,
				ARName:    product.ARName,
				UnitPrice: unitPrice,
				Quantity:  line.Quantity,
				Total:     unitPrice * float64(line.Quantity),
			}
			if weight != nil {
				item.WeightID = weight.ID
				item.WeightLabel = weight.Label
			}
			orderItems = append(orderItems, item)
		}

		// Delivery resolution
		deliveryType := models.DeliveryType(req.DeliveryType)
		var store string
		var deliveryPrice float64
		var pickupDate *time.Time

		if deliveryType == models.DeliveryPickup {
			store = req.PickupStore
			date, _ := time.Parse(pickupDateLayout, req.PickupDate)
			pickupDate = &date
		} else {
			var tariffs []models.Tariff
			if err := tx.Where("wilaya_code = ?", req.WilayaCode).Find(&tariffs).Error; err != nil {
				return err
			}
			var err error
			store, deliveryPrice, err = tariffcontroller.ResolveCheapestStore(tariffs, deliveryType)
			if err != nil {
				return err
			}
		}

		subtotal, total := orderTotals(orderItems, deliveryPrice)

		order = models.Order{
			OrderRef:      generateOrderRef(),
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			WilayaCode:    req.WilayaCode,
			WilayaName:    req.WilayaName,
			Address:       req.Address,
			DeliveryType:  deliveryType,
			Store:         store,
			PickupDate:    pickupDate,
			Subtotal:      subtotal,
			DeliveryPrice: deliveryPrice,
			Total:         total,
			Status:        models.OrderStatusNew,
			Notes:         req.Notes,
			Manual:        manual,
			Items:         orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear the guest cart inside the same transaction
		if req.GuestID != "" {
			var cart models.GuestCart
			if err := tx.Where("guest_id = ?", req.GuestID).First(&cart).Error; err == nil {
				if err := tx.Where("cart_id = ?", cart.CartID).
					Delete(&models.GuestCartItem{}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	broadcastNewOrder(order)
	return &order, nil
}

// CheckoutHandler serves the storefront checkout.
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, req, false)
		if err != nil {
			if errors.Is(err, tariffcontroller.ErrUndeliverable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This wilaya is not deliverable"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// ManualOrderHandler lets staff enter phone orders; same rules, flagged
// manual.
func ManualOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, req, true)
		if err != nil {
			if errors.Is(err, tariffcontroller.ErrUndeliverable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This wilaya is not deliverable"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
