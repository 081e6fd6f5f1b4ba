package tariffcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

type TariffInput struct {
	Store       string  `json:"store" binding:"required"`
	WilayaCode  int     `json:"wilaya_code" binding:"required"`
	WilayaName  string  `json:"wilaya_name"`
	HomePrice   float64 `json:"home_price"`
	BureauPrice float64 `json:"bureau_price"`
	ReturnFee   float64 `json:"return_fee"`
	Active      *bool   `json:"active"`
}

// GetTariffs lists tariff rows, optionally for one store or one wilaya.
func GetTariffs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Tariff{})

		if store := c.Query("store"); store != "" {
			if !models.ValidStore(store) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown store"})
				return
			}
			query = query.Where("store = ?", store)
		}
		if wilayaStr := c.Query("wilaya"); wilayaStr != "" {
			wilaya, err := strconv.Atoi(wilayaStr)
			if err != nil || !models.ValidWilaya(wilaya) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya must be a code between 1 and 58"})
				return
			}
			query = query.Where("wilaya_code = ?", wilaya)
		}

		var tariffs []models.Tariff
		if err := query.Order("store, wilaya_code").Find(&tariffs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tariffs"})
			return
		}
		c.JSON(http.StatusOK, tariffs)
	}
}

// UpsertTariff creates or replaces the single tariff row for the
// (store, wilaya) pair.
func UpsertTariff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TariffInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidStore(input.Store) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown store"})
			return
		}
		if !models.ValidWilaya(input.WilayaCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya_code must be between 1 and 58"})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		var tariff models.Tariff
		err := db.Where("store = ? AND wilaya_code = ?", input.Store, input.WilayaCode).First(&tariff).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tariff"})
			return
		}

		tariff.Store = input.Store
		tariff.WilayaCode = input.WilayaCode
		tariff.WilayaName = input.WilayaName
		tariff.HomePrice = input.HomePrice
		tariff.BureauPrice = input.BureauPrice
		tariff.ReturnFee = input.ReturnFee
		tariff.Active = active

		if err := db.Save(&tariff).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tariff"})
			return
		}
		c.JSON(http.StatusOK, tariff)
	}
}

func DeleteTariff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Tariff{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tariff"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tariff not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tariff deleted successfully"})
	}
}
