package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductWeight{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type productListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func TestGetProductsPaginationCoversAllRowsOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	const seeded = 25
	for i := 1; i <= seeded; i++ {
		product := models.Product{
			FRName: fmt.Sprintf("Produit %02d", i),
			ARName: fmt.Sprintf("منتج %02d", i),
			Price:  100, // identical sort key, pages must still not overlap
			Image:  "spice.webp",
			Stock:  10,
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("seed product %d: %v", i, err)
		}
	}

	r := gin.New()
	r.GET("/products", GetProducts(db))

	seen := make(map[uint]bool)
	fetched := 0
	for page := 1; page <= 3; page++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/products?page=%d&limit=10&sort_by=price", page), nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("page %d: status %d: %s", page, w.Code, w.Body.String())
		}

		var resp productListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("page %d: decode response: %v", page, err)
		}
		if resp.Total != seeded {
			t.Fatalf("page %d: total = %d, want %d", page, resp.Total, seeded)
		}
		for _, p := range resp.Products {
			if seen[p.ID] {
				t.Fatalf("product %d returned on more than one page", p.ID)
			}
			seen[p.ID] = true
		}
		fetched += len(resp.Products)
	}

	if fetched != seeded {
		t.Fatalf("pages returned %d products in total, want %d", fetched, seeded)
	}
}
