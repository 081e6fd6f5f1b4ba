package cartControllers

import (
	"testing"

	"github.com/ismailkendil058/albadr-api/models"
)

// addOrMerge mirrors the cart's line-merge semantics: quantities add into
// the line with the same (product, weight) identity, else a line is appended.
func addOrMerge(items []models.GuestCartItem, productID, weightID uint, qty int) []models.GuestCartItem {
	for i := range items {
		if items[i].SameLine(productID, weightID) {
			items[i].Quantity += qty
			return items
		}
	}
	return append(items, models.GuestCartItem{
		ProductID: productID,
		WeightID:  weightID,
		Quantity:  qty,
	})
}

func TestSameProductSameWeightMerges(t *testing.T) {
	var items []models.GuestCartItem
	items = addOrMerge(items, 10, 7, 2)
	items = addOrMerge(items, 10, 7, 3)

	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestDifferentWeightsAreDistinctLines(t *testing.T) {
	var items []models.GuestCartItem
	items = addOrMerge(items, 10, 7, 1)  // 100g
	items = addOrMerge(items, 10, 8, 1)  // 250g
	items = addOrMerge(items, 10, 0, 1)  // base price
	items = addOrMerge(items, 11, 0, 1)  // other product

	if len(items) != 4 {
		t.Fatalf("expected four distinct lines, got %d", len(items))
	}
	for _, item := range items {
		if item.Quantity != 1 {
			t.Fatalf("line (%d,%d) merged unexpectedly: qty %d",
				item.ProductID, item.WeightID, item.Quantity)
		}
	}
}

func TestSameLineUsesCompositeKey(t *testing.T) {
	item := models.GuestCartItem{ProductID: 10, WeightID: 7}

	if !item.SameLine(10, 7) {
		t.Fatal("identical composite key should match")
	}
	if item.SameLine(10, 8) {
		t.Fatal("same product, different weight must not match")
	}
	if item.SameLine(11, 7) {
		t.Fatal("different product must not match")
	}
}

func TestCartSubtotal(t *testing.T) {
	items := []models.GuestCartItem{
		{UnitPrice: 500, Quantity: 2},
		{UnitPrice: 300, Quantity: 1, WeightID: 7},
	}
	if got := models.CartSubtotal(items); got != 1300 {
		t.Fatalf("expected subtotal 1300, got %v", got)
	}
	if got := models.CartSubtotal(nil); got != 0 {
		t.Fatalf("empty cart subtotal should be 0, got %v", got)
	}
}
