package tariffcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/metrics"
	"github.com/ismailkendil058/albadr-api/models"
	"gorm.io/gorm"
)

// ErrUndeliverable means no active tariff covers the wilaya for either
// store. Callers must refuse the order rather than invent a price.
var ErrUndeliverable = errors.New("no store delivers to this wilaya")

// ResolveCheapestStore picks the store that ships cheapest for the requested
// delivery type among the given tariff rows (all for one wilaya). Stores are
// compared in models.StoreOrder; on an exact tie the earlier store wins.
// Stores without an active row are excluded; no usable row at all returns
// ErrUndeliverable.
func ResolveCheapestStore(tariffs []models.Tariff, deliveryType models.DeliveryType) (string, float64, error) {
	byStore := make(map[string]models.Tariff, len(tariffs))
	for _, t := range tariffs {
		if t.Active {
			byStore[t.Store] = t
		}
	}

	found := false
	var bestStore string
	var bestPrice float64
	for _, store := range models.StoreOrder {
		t, ok := byStore[store]
		if !ok {
			continue
		}
		price := t.HomePrice
		if deliveryType == models.DeliveryBureau {
			price = t.BureauPrice
		}
		if !found || price < bestPrice {
			found = true
			bestStore = store
			bestPrice = price
		}
	}
	if !found {
		return "", 0, ErrUndeliverable
	}
	return bestStore, bestPrice, nil
}

// QuoteDelivery answers GET /delivery/quote?wilaya=16&type=home with the
// fulfilling store and the price the customer is charged.
func QuoteDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deliveryType := models.DeliveryType(c.Query("type"))

		// Pickup is always free and bypasses tariffs entirely; the
		// customer picks the store at checkout.
		if deliveryType == models.DeliveryPickup {
			metrics.QuoteResults.WithLabelValues("pickup").Inc()
			c.JSON(http.StatusOK, gin.H{"delivery_type": deliveryType, "price": 0})
			return
		}

		if deliveryType != models.DeliveryHome && deliveryType != models.DeliveryBureau {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be home, bureau or pickup"})
			return
		}

		wilaya, err := strconv.Atoi(c.Query("wilaya"))
		if err != nil || !models.ValidWilaya(wilaya) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya must be a code between 1 and 58"})
			return
		}

		var tariffs []models.Tariff
		if err := db.Where("wilaya_code = ?", wilaya).Find(&tariffs).Error; err != nil {
			// Retryable: the client must not proceed with a made-up price.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to look up delivery tariffs"})
			return
		}

		store, price, err := ResolveCheapestStore(tariffs, deliveryType)
		if err != nil {
			metrics.QuoteResults.WithLabelValues("undeliverable").Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This wilaya is not deliverable"})
			return
		}

		metrics.QuoteResults.WithLabelValues("resolved").Inc()
		c.JSON(http.StatusOK, gin.H{
			"store":         store,
			"price":         price,
			"wilaya_code":   wilaya,
			"delivery_type": deliveryType,
		})
	}
}
