package contentController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}

// POST /contact — public contact form.
func SubmitContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and message are required"})
			return
		}

		msg := models.ContactMessage{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Message: req.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
	}
}

// GET /admin/contact-messages — newest first, paginated.
func GetContactMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		var total int64
		if err := db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
			return
		}

		var messages []models.ContactMessage
		if err := db.Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"messages": messages,
			"total":    total,
			"page":     page,
			"limit":    limit,
		})
	}
}

func DeleteContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ContactMessage{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	}
}
