package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

const categoryUploadDir = "/var/www/albadr/uploads/categories"
const categoryPublicPath = "/uploads/categories"

func saveCategoryImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(categoryUploadDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(categoryUploadDir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", categoryPublicPath, name), nil
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		frname := c.PostForm("fr_name")
		arname := c.PostForm("ar_name")
		if frname == "" || arname == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fr_name and ar_name are required"})
			return
		}

		var imageURL string
		if _, err := c.FormFile("image"); err == nil {
			imageURL, err = saveCategoryImage(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		category := models.Category{
			FRName:  frname,
			ARName:  arname,
			Image:   imageURL,
			Special: c.PostForm("special") == "true",
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("Products").First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("fr_name"); v != "" {
			category.FRName = v
		}
		if v := c.PostForm("ar_name"); v != "" {
			category.ARName = v
		}
		switch c.PostForm("special") {
		case "true":
			category.Special = true
		case "false":
			category.Special = false
		}

		if _, err := c.FormFile("image"); err == nil {
			if category.Image != "" {
				_ = os.Remove(filepath.Join(categoryUploadDir, filepath.Base(category.Image)))
			}
			imageURL, err := saveCategoryImage(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			category.Image = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory refuses to delete a category that still has products;
// nothing is removed in that case.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var productCount int64
		if err := db.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category products"})
			return
		}
		if productCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Category still contains products"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if category.Image != "" {
			_ = os.Remove(filepath.Join(categoryUploadDir, filepath.Base(category.Image)))
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
