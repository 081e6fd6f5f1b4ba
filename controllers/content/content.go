package contentController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/cache"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

const contentUploadDir = "/var/www/albadr/uploads/content"
const contentPublicPath = "/uploads/content"

const contentCacheKey = "content:blocks"
const contentCacheTTL = 10 * time.Minute

// GetContent returns every content block for the storefront. Served from
// Redis when warm; any write invalidates the key.
func GetContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := cache.Get(contentCacheKey); ok {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}

		var blocks []models.ContentBlock
		if err := db.Order("key").Find(&blocks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}

		if data, err := json.Marshal(blocks); err == nil {
			cache.Set(contentCacheKey, string(data), contentCacheTTL)
		}
		c.JSON(http.StatusOK, blocks)
	}
}

// UpsertContent creates or updates the block for :key. Multipart form with
// ar_text, fr_text and an optional image.
func UpsertContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
			return
		}

		var block models.ContentBlock
		err := db.Where("key = ?", key).First(&block).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content block"})
			return
		}
		block.Key = key

		if v, ok := c.GetPostForm("ar_text"); ok {
			block.ARText = v
		}
		if v, ok := c.GetPostForm("fr_text"); ok {
			block.FRText = v
		}

		if file, err := c.FormFile("image"); err == nil {
			if err := os.MkdirAll(contentUploadDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}
			if block.Image != "" {
				_ = os.Remove(filepath.Join(contentUploadDir, filepath.Base(block.Image)))
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			if err := c.SaveUploadedFile(file, filepath.Join(contentUploadDir, name)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			block.Image = fmt.Sprintf("%s/%s", contentPublicPath, name)
		}

		if err := db.Save(&block).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content block"})
			return
		}

		cache.Del(contentCacheKey)
		c.JSON(http.StatusOK, block)
	}
}

func DeleteContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		var block models.ContentBlock
		if err := db.Where("key = ?", key).First(&block).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
			return
		}

		if err := db.Delete(&block).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content block"})
			return
		}
		if block.Image != "" {
			_ = os.Remove(filepath.Join(contentUploadDir, filepath.Base(block.Image)))
		}

		cache.Del(contentCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "Content block deleted successfully"})
	}
}
