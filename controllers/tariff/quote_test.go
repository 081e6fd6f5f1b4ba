package tariffcontroller

import (
	"testing"

	"github.com/ismailkendil058/albadr-api/models"
)

func tariff(store string, wilaya int, home, bureau float64) models.Tariff {
	return models.Tariff{
		Store:       store,
		WilayaCode:  wilaya,
		HomePrice:   home,
		BureauPrice: bureau,
		Active:      true,
	}
}

func TestResolvePicksCheaperStore(t *testing.T) {
	// Wilaya 16 (Alger): alger 850, setif 900 → alger at 850.
	tariffs := []models.Tariff{
		tariff(models.StoreAlger, 16, 850, 600),
		tariff(models.StoreSetif, 16, 900, 650),
	}

	store, price, err := ResolveCheapestStore(tariffs, models.DeliveryHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != models.StoreAlger || price != 850 {
		t.Fatalf("expected (%s, 850), got (%s, %v)", models.StoreAlger, store, price)
	}

	// The other store can win too.
	tariffs = []models.Tariff{
		tariff(models.StoreAlger, 16, 950, 600),
		tariff(models.StoreSetif, 16, 900, 650),
	}
	store, price, err = ResolveCheapestStore(tariffs, models.DeliveryHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != models.StoreSetif || price != 900 {
		t.Fatalf("expected (%s, 900), got (%s, %v)", models.StoreSetif, store, price)
	}
}

func TestResolveUsesBureauColumn(t *testing.T) {
	tariffs := []models.Tariff{
		tariff(models.StoreAlger, 31, 850, 700),
		tariff(models.StoreSetif, 31, 800, 750),
	}

	store, price, err := ResolveCheapestStore(tariffs, models.DeliveryBureau)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != models.StoreAlger || price != 700 {
		t.Fatalf("expected (%s, 700), got (%s, %v)", models.StoreAlger, store, price)
	}
}

func TestResolveTieKeepsFirstStore(t *testing.T) {
	tariffs := []models.Tariff{
		tariff(models.StoreSetif, 19, 500, 400),
		tariff(models.StoreAlger, 19, 500, 400),
	}

	// Determinism: the first store in StoreOrder must win every time,
	// regardless of row order.
	for i := 0; i < 100; i++ {
		store, price, err := ResolveCheapestStore(tariffs, models.DeliveryHome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store != models.StoreOrder[0] || price != 500 {
			t.Fatalf("tie-break returned (%s, %v) on run %d", store, price, i)
		}
	}
}

func TestResolveSkipsStoreWithoutRow(t *testing.T) {
	tariffs := []models.Tariff{
		tariff(models.StoreSetif, 40, 1200, 900),
	}

	store, price, err := ResolveCheapestStore(tariffs, models.DeliveryHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != models.StoreSetif || price != 1200 {
		t.Fatalf("expected (%s, 1200), got (%s, %v)", models.StoreSetif, store, price)
	}
}

func TestResolveSkipsInactiveRows(t *testing.T) {
	inactive := tariff(models.StoreAlger, 40, 100, 100)
	inactive.Active = false
	tariffs := []models.Tariff{
		inactive,
		tariff(models.StoreSetif, 40, 1200, 900),
	}

	store, _, err := ResolveCheapestStore(tariffs, models.DeliveryHome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != models.StoreSetif {
		t.Fatalf("inactive row should be excluded, got %s", store)
	}
}

func TestResolveFailsClosedWithoutTariffs(t *testing.T) {
	if _, _, err := ResolveCheapestStore(nil, models.DeliveryHome); err != ErrUndeliverable {
		t.Fatalf("expected ErrUndeliverable, got %v", err)
	}

	inactive := tariff(models.StoreAlger, 5, 100, 100)
	inactive.Active = false
	if _, _, err := ResolveCheapestStore([]models.Tariff{inactive}, models.DeliveryBureau); err != ErrUndeliverable {
		t.Fatalf("expected ErrUndeliverable with only inactive rows, got %v", err)
	}
}
