package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("inventory item not found")

// Stock and expiry badge labels. An item can carry one of each at the same
// time; they are independent classifications.
const (
	StockOut = "Out of Stock"
	StockLow = "Low Stock"

	ExpiryExpired  = "Expired"
	ExpirySoon     = "Expiring Soon"
	ExpiryUpcoming = "Expiring"
)

// ItemKind selects the expiry lead-time policy.
type ItemKind int

const (
	KindFood ItemKind = iota
	KindMedicine
)

// StockStatusOf classifies quantity against the minimum stock level. Empty
// stock always reads "Out of Stock", never "Low Stock".
func StockStatusOf(quantity, minimum float64) string {
	if quantity <= 0 {
		return StockOut
	}
	if quantity <= minimum {
		return StockLow
	}
	return ""
}

// ExpiryStatusOf classifies how close an expiry date is. Food turns urgent
// within a week; medicine policy runs on 30/90 day windows instead.
func ExpiryStatusOf(expiry *time.Time, now time.Time, kind ItemKind) string {
	if expiry == nil {
		return ""
	}
	days := daysBetween(now, *expiry)

	soon, upcoming := 7, 30
	if kind == KindMedicine {
		soon, upcoming = 30, 90
	}

	switch {
	case days < 0:
		return ExpiryExpired
	case days <= soon:
		return ExpirySoon
	case days <= upcoming:
		return ExpiryUpcoming
	default:
		return ""
	}
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// ItemStatus carries both derived badges; either may be empty.
type ItemStatus struct {
	Stock  string `json:"stock_status,omitempty"`
	Expiry string `json:"expiry_status,omitempty"`
}

// ClassifyFood derives status badges for a food item at the given instant.
func ClassifyFood(item models.FoodItem, now time.Time) ItemStatus {
	return ItemStatus{
		Stock:  StockStatusOf(item.Quantity, item.MinimumStock),
		Expiry: ExpiryStatusOf(item.ExpiryDate, now, KindFood),
	}
}

// ClassifyMedicine derives status badges for a medicine item.
func ClassifyMedicine(item models.MedicineItem, now time.Time) ItemStatus {
	return ItemStatus{
		Stock:  StockStatusOf(item.Quantity, item.MinimumStock),
		Expiry: ExpiryStatusOf(item.ExpiryDate, now, KindMedicine),
	}
}

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// --- food ---

func (s *InventoryService) ListFood() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch food inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) AddFood(item *models.FoodItem) error {
	item.ID = uuid.New()
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

func (s *InventoryService) UpdateFood(id uuid.UUID, patch map[string]interface{}) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch food item: %w", err)
	}
	if err := s.db.Model(&item).Updates(patch).Error; err != nil {
		return nil, fmt.Errorf("failed to update food item: %w", err)
	}
	return &item, nil
}

func (s *InventoryService) DeleteFood(id uuid.UUID) error {
	result := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete food item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// --- medicine ---

func (s *InventoryService) ListMedicine() ([]models.MedicineItem, error) {
	var items []models.MedicineItem
	if err := s.db.Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch medicine inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) AddMedicine(item *models.MedicineItem) error {
	item.ID = uuid.New()
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create medicine item: %w", err)
	}
	return nil
}

func (s *InventoryService) UpdateMedicine(id uuid.UUID, patch map[string]interface{}) (*models.MedicineItem, error) {
	var item models.MedicineItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch medicine item: %w", err)
	}
	if err := s.db.Model(&item).Updates(patch).Error; err != nil {
		return nil, fmt.Errorf("failed to update medicine item: %w", err)
	}
	return &item, nil
}

func (s *InventoryService) DeleteMedicine(id uuid.UUID) error {
	result := s.db.Delete(&models.MedicineItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medicine item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
