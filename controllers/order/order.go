package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// mapOrderStatus converts a request string to a known status.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusNew):
		return models.OrderStatusNew, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCanceled):
		return models.OrderStatusCanceled, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// normalizePageLimit clamps pagination params: page starts at 1, limit
// defaults to 20, capped at 100.
func normalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetOrders lists orders for the dashboards: newest first, filtered by
// status/store/search, paginated with an exact total count.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		page, limit = normalizePageLimit(page, limit)

		query := db.Model(&models.Order{})

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if store := c.Query("store"); store != "" {
			query = query.Where("store = ?", store)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"order_ref ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var orders []models.Order
		// Secondary sort keeps pages stable when timestamps collide.
		if err := query.
			Preload("Items").
			Order("created_at DESC, id DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"total":  total,
			"page":   page,
			"limit":  limit,
		})
	}
}

// GetOrderByID accepts a numeric id or an order ref.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		query := db.Preload("Items")
		if _, err := strconv.Atoi(id); err == nil {
			query = query.Where("id = ? OR order_ref = ?", id, id)
		} else {
			query = query.Where("order_ref = ?", id)
		}
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// GetOrderStats feeds the dashboard cards: counts per status, today's
// orders and delivered revenue.
func GetOrderStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		type statusCount struct {
			Status models.OrderStatus `json:"status"`
			Count  int64              `json:"count"`
		}

		var counts []statusCount
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) as count").
			Group("status").
			Scan(&counts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		byStatus := make(map[models.OrderStatus]int64, len(counts))
		var total int64
		for _, sc := range counts {
			byStatus[sc.Status] = sc.Count
			total += sc.Count
		}

		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		var todayCount int64
		if err := db.Model(&models.Order{}).
			Where("created_at >= ?", startOfDay).
			Count(&todayCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		var revenue float64
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusDelivered).
			Select("COALESCE(SUM(total), 0)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":        total,
			"by_status":    byStatus,
			"today_orders": todayCount,
			"revenue":      revenue,
		})
	}
}
