package orderControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type orderListResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func TestGetOrdersPaginationCoversAllRowsOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	// Same timestamp on every row so ordering falls back to the id
	// tie-break; pages must still neither overlap nor skip.
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	const seeded = 25
	for i := 1; i <= seeded; i++ {
		order := models.Order{
			OrderRef:      fmt.Sprintf("ORD-TEST-%03d", i),
			CustomerName:  fmt.Sprintf("Client %02d", i),
			CustomerPhone: "0550000000",
			WilayaCode:    16,
			WilayaName:    "Alger",
			Address:       "12 Rue Didouche Mourad",
			DeliveryType:  models.DeliveryHome,
			Store:         models.StoreAlger,
			Subtotal:      1000,
			DeliveryPrice: 400,
			Total:         1400,
			Status:        models.OrderStatusNew,
			CreatedAt:     created,
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed order %d: %v", i, err)
		}
	}

	r := gin.New()
	r.GET("/orders", GetOrders(db))

	seen := make(map[uint]bool)
	fetched := 0
	for page := 1; page <= 3; page++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/orders?page=%d&limit=10", page), nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("page %d: status %d: %s", page, w.Code, w.Body.String())
		}

		var resp orderListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("page %d: decode response: %v", page, err)
		}
		if resp.Total != seeded {
			t.Fatalf("page %d: total = %d, want %d", page, resp.Total, seeded)
		}
		for _, o := range resp.Orders {
			if seen[o.ID] {
				t.Fatalf("order %d returned on more than one page", o.ID)
			}
			seen[o.ID] = true
		}
		fetched += len(resp.Orders)
	}

	if fetched != seeded {
		t.Fatalf("pages returned %d orders in total, want %d", fetched, seeded)
	}
}
