package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// flagColumns maps the storefront's section filters to product columns.
var flagColumns = map[string]string{
	"featured":    "featured",
	"best_seller": "best_seller",
	"new":         "is_new",
	"promo":       "promo",
}

// GetProducts lists products with bilingual search, category/flag/price
// filters, sorting and offset pagination. The response carries the exact
// total so dashboards can page without overlap.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if sortBy != "created_at" && sortBy != "price" && sortBy != "stock" {
			sortBy = "created_at"
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		page, limit = normalizePageLimit(page, limit)

		query := db.Model(&models.Product{}).Preload("Category").Preload("Weights")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(`
				fr_name ILIKE ? OR fr_description ILIKE ? OR ar_name ILIKE ? OR ar_description ILIKE ?
			`, likePattern, likePattern, likePattern, likePattern)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		for param, column := range flagColumns {
			if c.Query(param) == "true" {
				query = query.Where(column+" = ?", true)
			}
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		// Secondary sort keeps pages stable when the sort column collides.
		orderClause := fmt.Sprintf("%s %s, id %s", sortBy, sortOrder, sortOrder)
		if err := query.
			Order(orderClause).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    total,
			"page":     page,
			"limit":    limit,
		})
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
