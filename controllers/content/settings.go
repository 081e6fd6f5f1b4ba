package contentController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// GetSettings returns all site settings as a key → value map.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.SiteSetting
		if err := db.Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		out := make(map[string]string, len(settings))
		for _, s := range settings {
			out[s.Key] = s.Value
		}
		c.JSON(http.StatusOK, out)
	}
}

type settingInput struct {
	Value string `json:"value"`
}

// UpsertSetting sets one key.
func UpsertSetting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
			return
		}

		var input settingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var setting models.SiteSetting
		err := db.Where("key = ?", key).First(&setting).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch setting"})
			return
		}
		setting.Key = key
		setting.Value = input.Value

		if err := db.Save(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}
