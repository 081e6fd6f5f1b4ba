package routes

import (
	"github.com/gin-gonic/gin"
	contentController "github.com/ismailkendil058/albadr-api/controllers/content"
	orderControllers "github.com/ismailkendil058/albadr-api/controllers/order"
	productcontroller "github.com/ismailkendil058/albadr-api/controllers/product"
	staffController "github.com/ismailkendil058/albadr-api/controllers/staff"
	tariffcontroller "github.com/ismailkendil058/albadr-api/controllers/tariff"
	"github.com/ismailkendil058/albadr-api/middleware"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all back-office endpoints. Every group is
// JWT-protected; the allowed role set narrows with sensitivity.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	anyStaff := middleware.RequireRole(models.RoleSuperadmin, models.RoleManager, models.RoleEmployee)
	managers := middleware.RequireRole(models.RoleSuperadmin, models.RoleManager)
	superadmin := middleware.RequireRole(models.RoleSuperadmin)

	adminGroup := r.Group("/admin")
	{
		// ─────────── Orders (all staff handle orders) ───────────
		orders := adminGroup.Group("/orders", anyStaff)
		{
			orders.GET("", orderControllers.GetOrders(db))
			orders.GET("/stats", orderControllers.GetOrderStats(db))
			orders.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orders.GET("/ws", orderControllers.OrderWebSocketHandler)
			orders.GET("/:orderID", orderControllers.GetOrderByID(db))
			orders.POST("/manual", orderControllers.ManualOrderHandler(db))
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
			orders.DELETE("/:orderID", superadmin, orderControllers.DeleteOrder(db))
		}

		// ─────────── Product management ───────────
		products := adminGroup.Group("/products", managers)
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/:id/weights", productcontroller.AddProductWeight(db))
		}
		weights := adminGroup.Group("/weights", managers)
		{
			weights.PUT("/:weightID", productcontroller.UpdateProductWeight(db))
			weights.DELETE("/:weightID", productcontroller.DeleteProductWeight(db))
		}

		// ─────────── Category management ───────────
		categories := adminGroup.Group("/categories", managers)
		{
			categories.POST("", productcontroller.CreateCategory(db))
			categories.PUT("/:id", productcontroller.UpdateCategory(db))
			categories.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Delivery tariffs ───────────
		tariffs := adminGroup.Group("/tariffs", managers)
		{
			tariffs.GET("", tariffcontroller.GetTariffs(db))
			tariffs.POST("", tariffcontroller.UpsertTariff(db))
			tariffs.POST("/import-excel", tariffcontroller.ImportTariffsFromExcel(db))
			tariffs.DELETE("/:id", tariffcontroller.DeleteTariff(db))
		}

		// ─────────── Site content / settings ───────────
		content := adminGroup.Group("/content", managers)
		{
			content.PUT("/:key", contentController.UpsertContent(db))
			content.DELETE("/:key", contentController.DeleteContent(db))
		}
		settings := adminGroup.Group("/settings", managers)
		{
			settings.PUT("/:key", contentController.UpsertSetting(db))
		}

		// ─────────── Contact messages ───────────
		contact := adminGroup.Group("/contact-messages", managers)
		{
			contact.GET("", contentController.GetContactMessages(db))
			contact.DELETE("/:id", contentController.DeleteContactMessage(db))
		}

		// ─────────── Staff accounts ───────────
		staff := adminGroup.Group("/staff", managers)
		{
			staff.GET("", staffController.GetStaff(db))
			staff.POST("", staffController.CreateStaff(db))
			staff.PUT("/:id", staffController.UpdateStaff(db))
			staff.DELETE("/:id", staffController.DeleteStaff(db))
		}
	}
}
