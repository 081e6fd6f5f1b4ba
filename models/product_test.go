package models

import "testing"

func TestEffectiveUnitPrice(t *testing.T) {
	product := Product{Price: 500}

	if got := EffectiveUnitPrice(product, nil); got != 500 {
		t.Fatalf("base price: expected 500, got %v", got)
	}

	weight := ProductWeight{Label: "100g", Price: 300}
	if got := EffectiveUnitPrice(product, &weight); got != 300 {
		t.Fatalf("variant price should override: expected 300, got %v", got)
	}
}
