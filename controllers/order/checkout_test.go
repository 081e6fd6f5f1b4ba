package orderControllers

import (
	"strings"
	"testing"
	"time"

	"github.com/ismailkendil058/albadr-api/models"
)

func validHomeRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Amine B.",
		CustomerPhone: "0550123456",
		WilayaCode:    16,
		WilayaName:    "الجزائر",
		Address:       "Rue Didouche Mourad 12",
		DeliveryType:  "home",
		Items: []CheckoutItem{
			{ProductID: 1, Quantity: 2},
		},
	}
}

func TestValidateCheckoutAcceptsValidRequests(t *testing.T) {
	now := time.Now()

	if err := validateCheckout(validHomeRequest(), now); err != nil {
		t.Fatalf("valid home request rejected: %v", err)
	}

	bureau := validHomeRequest()
	bureau.DeliveryType = "bureau"
	bureau.Address = ""
	if err := validateCheckout(bureau, now); err != nil {
		t.Fatalf("valid bureau request rejected: %v", err)
	}

	pickup := validHomeRequest()
	pickup.DeliveryType = "pickup"
	pickup.Address = ""
	pickup.PickupStore = models.StoreAlger
	pickup.PickupDate = now.Format(pickupDateLayout)
	if err := validateCheckout(pickup, now); err != nil {
		t.Fatalf("pickup today rejected: %v", err)
	}
}

func TestValidateCheckoutRejections(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		mutate  func(*CheckoutRequest)
		wantErr string
	}{
		{
			"no items",
			func(r *CheckoutRequest) { r.Items = nil },
			"at least one item",
		},
		{
			"zero quantity",
			func(r *CheckoutRequest) { r.Items[0].Quantity = 0 },
			"positive",
		},
		{
			"missing name",
			func(r *CheckoutRequest) { r.CustomerName = "" },
			"customer_name",
		},
		{
			"missing phone",
			func(r *CheckoutRequest) { r.CustomerPhone = "" },
			"customer_phone",
		},
		{
			"home without address",
			func(r *CheckoutRequest) { r.Address = "" },
			"address is required",
		},
		{
			"bad wilaya",
			func(r *CheckoutRequest) { r.WilayaCode = 59 },
			"wilaya_code",
		},
		{
			"unknown delivery type",
			func(r *CheckoutRequest) { r.DeliveryType = "drone" },
			"delivery_type",
		},
		{
			"pickup without store",
			func(r *CheckoutRequest) {
				r.DeliveryType = "pickup"
				r.PickupDate = now.Format(pickupDateLayout)
			},
			"pickup_store",
		},
		{
			"pickup without date",
			func(r *CheckoutRequest) {
				r.DeliveryType = "pickup"
				r.PickupStore = models.StoreAlger
			},
			"pickup_date",
		},
		{
			"pickup date in the past",
			func(r *CheckoutRequest) {
				r.DeliveryType = "pickup"
				r.PickupStore = models.StoreAlger
				r.PickupDate = now.AddDate(0, 0, -1).Format(pickupDateLayout)
			},
			"past",
		},
	}

	for _, tc := range cases {
		req := validHomeRequest()
		tc.mutate(&req)
		err := validateCheckout(req, now)
		if err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestOrderTotals(t *testing.T) {
	// Base price 500 × 2 plus weight-variant price 300 × 1, delivery 850
	// → subtotal 1300, total 2150.
	items := []models.OrderItem{
		{UnitPrice: 500, Quantity: 2, Total: 1000},
		{UnitPrice: 300, Quantity: 1, WeightID: 7, WeightLabel: "100g", Total: 300},
	}

	subtotal, total := orderTotals(items, 850)
	if subtotal != 1300 {
		t.Fatalf("expected subtotal 1300, got %v", subtotal)
	}
	if total != 2150 {
		t.Fatalf("expected total 2150, got %v", total)
	}

	// Pickup: delivery 0, total equals subtotal exactly.
	subtotal, total = orderTotals(items, 0)
	if total != subtotal {
		t.Fatalf("pickup total %v should equal subtotal %v", total, subtotal)
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"new", "confirmed", "delivered", "canceled", "returned", "Confirmed"} {
		if _, err := mapOrderStatus(valid); err != nil {
			t.Fatalf("status %q rejected: %v", valid, err)
		}
	}
	if _, err := mapOrderStatus("shipped"); err == nil {
		t.Fatal("unknown status accepted")
	}
}

func TestNormalizePageLimit(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-3, -1, 1, 20},
		{2, 50, 2, 50},
		{1, 500, 1, 100},
	}
	for _, tc := range cases {
		page, limit := normalizePageLimit(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("normalizePageLimit(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
