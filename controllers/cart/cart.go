package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	WeightID  uint `json:"weight_id"` // 0 = base price, no variant
	Quantity  int  `json:"quantity" binding:"required"`
}

// SetQuantityInput uses a pointer so that an explicit 0 survives binding:
// 0 means "remove this line".
type SetQuantityInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	WeightID  uint `json:"weight_id"`
	Quantity  *int `json:"quantity" binding:"required"`
}

// fetchOrCreateCart returns the guest's cart, creating it on first use.
func fetchOrCreateCart(db *gorm.DB, guestID string) (models.GuestCart, error) {
	var cart models.GuestCart
	err := db.Where("guest_id = ?", guestID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.GuestCart{GuestID: guestID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// snapshotLine builds a cart line from the product (and optional weight
// variant, whose price overrides the product price).
func snapshotLine(cartID uint, product models.Product, weight *models.ProductWeight, quantity int) models.GuestCartItem {
	item := models.GuestCartItem{
		CartID:        cartID,
		ProductID:     product.ID,
		FRName:        product.FRName,
		ARName:        product.ARName,
		Image:         product.Image,
		UnitPrice:     models.EffectiveUnitPrice(product, weight),
		OriginalPrice: product.OriginalPrice,
		Stock:         product.Stock,
		Quantity:      quantity,
		AddedAt:       time.Now(),
	}
	if weight != nil {
		item.WeightID = weight.ID
		item.WeightLabel = weight.Label
	}
	return item
}

// POST /guest/cart — adds a product to the cart. If a line with the same
// (product, weight) identity exists, quantities add; otherwise a new line
// is appended.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and a positive quantity are required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var weight *models.ProductWeight
		if input.WeightID != 0 {
			var w models.ProductWeight
			if err := db.Where("id = ? AND product_id = ?", input.WeightID, input.ProductID).First(&w).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Weight does not belong to this product"})
				return
			}
			weight = &w
		}

		cart, err := fetchOrCreateCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		// Upsert on the composite line index so concurrent adds on the same
		// (product, weight) line merge instead of colliding. Merging also
		// refreshes the snapshot fields to the product as it is now.
		line := snapshotLine(cart.CartID, product, weight, input.Quantity)
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}, {Name: "weight_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":       gorm.Expr("quantity + ?", input.Quantity),
				"unit_price":     line.UnitPrice,
				"original_price": line.OriginalPrice,
				"stock":          line.Stock,
				"fr_name":        line.FRName,
				"ar_name":        line.ARName,
				"image":          line.Image,
				"weight_label":   line.WeightLabel,
				"added_at":       line.AddedAt,
			}),
		}).Create(&line).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		var item models.GuestCartItem
		if err := db.Where("cart_id = ? AND product_id = ? AND weight_id = ?",
			cart.CartID, input.ProductID, input.WeightID).First(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /guest/cart — sets the quantity of an existing line; 0 removes it.
func SetCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := *input.Quantity
		if quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		var item models.GuestCartItem
		if err := db.Where("cart_id = ? AND product_id = ? AND weight_id = ?",
			cart.CartID, input.ProductID, input.WeightID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if quantity == 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		item.Quantity = quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /guest/cart/items — removes one line by the same composite
// (product, weight) key used for merging.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		weightID := uint64(0)
		if weightStr := c.Query("weight_id"); weightStr != "" {
			weightID, err = strconv.ParseUint(weightStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight_id"})
				return
			}
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ? AND weight_id = ?",
			cart.CartID, uint(productID), uint(weightID)).Delete(&models.GuestCartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.GuestCart
		err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}, "subtotal": 0})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_id":  cart.CartID,
			"items":    cart.Items,
			"subtotal": models.CartSubtotal(cart.Items),
		})
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "Cart already empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
