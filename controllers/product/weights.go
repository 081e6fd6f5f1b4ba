package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type WeightRequest struct {
	Label    string  `json:"label" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Position int     `json:"position"`
}

// syncHasWeights keeps the product's has_weights flag in step with its
// variant rows.
func syncHasWeights(db *gorm.DB, productID uint) error {
	var count int64
	if err := db.Model(&models.ProductWeight{}).
		Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	return db.Model(&models.Product{}).Where("id = ?", productID).
		Update("has_weights", count > 0).Error
}

// GET /products/:id/weights
func GetProductWeights(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		var weights []models.ProductWeight
		if err := db.Where("product_id = ?", productID).
			Order("position ASC").Find(&weights).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weights"})
			return
		}
		c.JSON(http.StatusOK, weights)
	}
}

// POST /admin/products/:id/weights
func AddProductWeight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(productID)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req WeightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		weight := models.ProductWeight{
			ProductID: uint(productID),
			Label:     req.Label,
			Price:     req.Price,
			Position:  req.Position,
		}
		if err := db.Create(&weight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create weight"})
			return
		}
		if err := syncHasWeights(db, uint(productID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusCreated, weight)
	}
}

// PUT /admin/weights/:weightID
func UpdateProductWeight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var weight models.ProductWeight
		if err := db.First(&weight, c.Param("weightID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight not found"})
			return
		}

		var req WeightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		weight.Label = req.Label
		weight.Price = req.Price
		weight.Position = req.Position
		if err := db.Save(&weight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update weight"})
			return
		}
		c.JSON(http.StatusOK, weight)
	}
}

// DELETE /admin/weights/:weightID
func DeleteProductWeight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var weight models.ProductWeight
		if err := db.First(&weight, c.Param("weightID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight not found"})
			return
		}

		if err := db.Delete(&weight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete weight"})
			return
		}
		if err := syncHasWeights(db, weight.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Weight deleted successfully"})
	}
}
