package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/ismailkendil058/albadr-api/controllers/cart"
	contentController "github.com/ismailkendil058/albadr-api/controllers/content"
	orderControllers "github.com/ismailkendil058/albadr-api/controllers/order"
	productcontroller "github.com/ismailkendil058/albadr-api/controllers/product"
	tariffcontroller "github.com/ismailkendil058/albadr-api/controllers/tariff"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything the storefront calls without
// authentication.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ─────────── Catalog ───────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/:id/weights", productcontroller.GetProductWeights(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))

	// ─────────── Delivery quote ───────────
	r.GET("/delivery/quote", tariffcontroller.QuoteDelivery(db))

	// ─────────── Guest cart ───────────
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db))
		guestCart.POST("", cartControllers.AddToCart(db))
		guestCart.PUT("", cartControllers.SetCartItemQuantity(db))
		guestCart.DELETE("/items", cartControllers.RemoveCartItem(db))
		guestCart.DELETE("", cartControllers.ClearGuestCart(db))
	}

	// ─────────── Checkout ───────────
	r.POST("/orders/checkout", orderControllers.CheckoutHandler(db))

	// ─────────── Content / settings / contact ───────────
	r.GET("/content", contentController.GetContent(db))
	r.GET("/settings", contentController.GetSettings(db))
	r.POST("/contact", contentController.SubmitContactMessage(db))
}
