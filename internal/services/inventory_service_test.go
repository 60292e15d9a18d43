package services

import (
	"testing"
	"time"

	"github.com/sevasetu/ngo-backend/internal/models"
)

func TestStockStatusOf(t *testing.T) {
	tests := []struct {
		name              string
		quantity, minimum float64
		want              string
	}{
		{"zero quantity", 0, 10, StockOut},
		{"negative quantity", -1, 10, StockOut},
		// Out of stock wins even when the low-stock condition also holds.
		{"zero with zero minimum", 0, 0, StockOut},
		{"at minimum", 10, 10, StockLow},
		{"below minimum", 5, 10, StockLow},
		{"above minimum", 11, 10, ""},
		{"plenty", 100, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockStatusOf(tt.quantity, tt.minimum); got != tt.want {
				t.Fatalf("StockStatusOf(%v, %v) = %q, want %q", tt.quantity, tt.minimum, got, tt.want)
			}
		})
	}
}

func TestExpiryStatusOf(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	inDays := func(d int) *time.Time {
		e := now.AddDate(0, 0, d)
		return &e
	}

	tests := []struct {
		name   string
		expiry *time.Time
		kind   ItemKind
		want   string
	}{
		{"no expiry date", nil, KindFood, ""},
		{"food expired yesterday", inDays(-1), KindFood, ExpiryExpired},
		{"food expires today", inDays(0), KindFood, ExpirySoon},
		{"food in 7 days", inDays(7), KindFood, ExpirySoon},
		{"food in 8 days", inDays(8), KindFood, ExpiryUpcoming},
		{"food in 30 days", inDays(30), KindFood, ExpiryUpcoming},
		{"food in 31 days", inDays(31), KindFood, ""},
		{"medicine expired", inDays(-10), KindMedicine, ExpiryExpired},
		{"medicine in 30 days", inDays(30), KindMedicine, ExpirySoon},
		{"medicine in 31 days", inDays(31), KindMedicine, ExpiryUpcoming},
		{"medicine in 90 days", inDays(90), KindMedicine, ExpiryUpcoming},
		{"medicine in 91 days", inDays(91), KindMedicine, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiryStatusOf(tt.expiry, now, tt.kind); got != tt.want {
				t.Fatalf("ExpiryStatusOf(%s) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExpiryStatusIgnoresTimeOfDay(t *testing.T) {
	// Expiring at 00:01 tomorrow is still one calendar day away, not expired,
	// regardless of the current wall-clock time.
	now := time.Date(2026, time.January, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2026, time.January, 11, 0, 1, 0, 0, time.UTC)

	if got := ExpiryStatusOf(&expiry, now, KindFood); got != ExpirySoon {
		t.Fatalf("ExpiryStatusOf = %q, want %q", got, ExpirySoon)
	}
}

func TestClassifyFoodBothBadges(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 3)
	item := models.FoodItem{Quantity: 2, MinimumStock: 5, ExpiryDate: &expiry}

	status := ClassifyFood(item, now)
	if status.Stock != StockLow {
		t.Fatalf("Stock = %q, want %q", status.Stock, StockLow)
	}
	if status.Expiry != ExpirySoon {
		t.Fatalf("Expiry = %q, want %q", status.Expiry, ExpirySoon)
	}
}

func TestClassifyMedicineUsesLongerWindows(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 20)

	med := models.MedicineItem{Quantity: 50, MinimumStock: 10, ExpiryDate: &expiry}
	if got := ClassifyMedicine(med, now).Expiry; got != ExpirySoon {
		t.Fatalf("medicine 20 days out = %q, want %q", got, ExpirySoon)
	}

	food := models.FoodItem{Quantity: 50, MinimumStock: 10, ExpiryDate: &expiry}
	if got := ClassifyFood(food, now).Expiry; got != ExpiryUpcoming {
		t.Fatalf("food 20 days out = %q, want %q", got, ExpiryUpcoming)
	}
}

func TestClassifyHealthyItemHasNoBadges(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	expiry := now.AddDate(1, 0, 0)
	item := models.FoodItem{Quantity: 100, MinimumStock: 10, ExpiryDate: &expiry}

	if status := ClassifyFood(item, now); status != (ItemStatus{}) {
		t.Fatalf("healthy item carries badges: %+v", status)
	}
}
