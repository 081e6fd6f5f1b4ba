package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// UpdateProduct updates a product by ID. Accepts the same multipart fields
// as CreateProduct; only the fields present are changed.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}
		parseBool := func(val string) *bool {
			switch val {
			case "true":
				b := true
				return &b
			case "false":
				b := false
				return &b
			}
			return nil
		}

		if v := c.PostForm("fr_name"); v != "" {
			product.FRName = v
		}
		if v := c.PostForm("ar_name"); v != "" {
			product.ARName = v
		}
		if v := c.PostForm("fr_description"); v != "" {
			product.FRDescription = v
		}
		if v := c.PostForm("ar_description"); v != "" {
			product.ARDescription = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloat(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = *v
		}
		if v := c.PostForm("stock"); v != "" {
			if s, err := strconv.Atoi(v); err == nil {
				product.Stock = s
			}
		}
		if v := parseBool(c.PostForm("featured")); v != nil {
			product.Featured = *v
		}
		if v := parseBool(c.PostForm("best_seller")); v != nil {
			product.BestSeller = *v
		}
		if v := parseBool(c.PostForm("is_new")); v != nil {
			product.IsNew = *v
		}
		if v := parseBool(c.PostForm("promo")); v != nil {
			product.Promo = *v
		}

		if v := c.PostForm("category_id"); v != "" {
			if v == "none" {
				product.CategoryID = nil
			} else if cid, err := strconv.ParseUint(v, 10, 64); err == nil {
				var category models.Category
				if err := db.First(&category, uint(cid)).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
					return
				}
				id := uint(cid)
				product.CategoryID = &id
			}
		}

		// Optional image replacement; the old file is removed from disk.
		if _, err := c.FormFile("image"); err == nil {
			oldImage := product.Image
			imageURL, err := saveProductImage(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = imageURL
			if oldImage != "" {
				_ = os.Remove(filepath.Join(uploadDir, filepath.Base(oldImage)))
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
