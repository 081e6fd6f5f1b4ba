package cartControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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
	if err := db.AutoMigrate(&models.Product{}, &models.ProductWeight{},
		&models.GuestCart{}, &models.GuestCartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func cartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guest/cart", AddToCart(db))
	r.PUT("/guest/cart", SetCartItemQuantity(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, price float64) models.Product {
	t.Helper()
	product := models.Product{
		FRName: "Cumin",
		ARName: "كمون",
		Price:  price,
		Image:  "cumin.webp",
		Stock:  10,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	db := openTestDB(t)
	r := cartRouter(db)
	product := seedProduct(t, db, 500)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("add: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":0}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("set quantity 0: status %d: %s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.Model(&models.GuestCartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if count != 0 {
		t.Fatalf("quantity 0 should remove the line, %d left", count)
	}
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	db := openTestDB(t)
	r := cartRouter(db)
	product := seedProduct(t, db, 500)

	doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID))

	w := doJSON(t, r, http.MethodPut, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":-1}`, product.ID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative quantity: status %d, want 400", w.Code)
	}

	var item models.GuestCartItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("line should survive a rejected update: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("quantity changed by rejected update: %d", item.Quantity)
	}
}

func TestAddToCartMergeRefreshesSnapshot(t *testing.T) {
	db := openTestDB(t)
	r := cartRouter(db)
	product := seedProduct(t, db, 500)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("first add: status %d: %s", w.Code, w.Body.String())
	}

	// Price drops between the two adds. The merged line must carry the
	// current price, not the snapshot from the first add.
	if err := db.Model(&product).Update("price", 450).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1",
		fmt.Sprintf(`{"product_id":%d,"quantity":3}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("second add: status %d: %s", w.Code, w.Body.String())
	}

	var items []models.GuestCartItem
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("load lines: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("merged quantity = %d, want 5", items[0].Quantity)
	}
	if items[0].UnitPrice != 450 {
		t.Fatalf("merged line kept stale price %v, want 450", items[0].UnitPrice)
	}
}
