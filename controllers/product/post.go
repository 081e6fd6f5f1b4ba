package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

const uploadDir = "/var/www/albadr/uploads/products"
const publicPath = "/uploads/products"

type weightInput struct {
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Position int     `json:"position"`
}

// saveProductImage stores the uploaded "image" form file with a unique
// name and returns its public URL.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", publicPath, name), nil
}

// CreateProduct creates a product with optional weight variants and an
// image upload. Multipart form; `weights` is a JSON array of
// {label, price, position}.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		frname := c.PostForm("fr_name")
		priceStr := c.PostForm("price")
		if frname == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fr_name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var originalPrice float64
		if v := c.PostForm("original_price"); v != "" {
			if op, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				originalPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
		}

		stock := 0
		if v := c.PostForm("stock"); v != "" {
			if s, parseErr := strconv.Atoi(v); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		var categoryID *uint
		if v := c.PostForm("category_id"); v != "" {
			cid, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			id := uint(cid)
			categoryID = &id
		}

		var weights []models.ProductWeight
		if v := c.PostForm("weights"); v != "" {
			var inputs []weightInput
			if err := json.Unmarshal([]byte(v), &inputs); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weights format"})
				return
			}
			for _, w := range inputs {
				if w.Label == "" || w.Price <= 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Each weight needs a label and a positive price"})
					return
				}
				weights = append(weights, models.ProductWeight{
					Label:    w.Label,
					Price:    w.Price,
					Position: w.Position,
				})
			}
		}

		imageURL, err := saveProductImage(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		newProduct := models.Product{
			FRName:        frname,
			ARName:        c.PostForm("ar_name"),
			FRDescription: c.PostForm("fr_description"),
			ARDescription: c.PostForm("ar_description"),
			Price:         price,
			OriginalPrice: originalPrice,
			Image:         imageURL,
			Featured:      c.PostForm("featured") == "true",
			BestSeller:    c.PostForm("best_seller") == "true",
			IsNew:         c.PostForm("is_new") == "true",
			Promo:         c.PostForm("promo") == "true",
			Stock:         stock,
			HasWeights:    len(weights) > 0,
			CategoryID:    categoryID,
			Weights:       weights,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
