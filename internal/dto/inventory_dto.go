package dto

type CreateFoodItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     *string `json:"category,omitempty"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"required"`
	ExpiryDate   *string `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MinimumStock float64 `json:"minimum_stock" validate:"gte=0"`
}

type CreateMedicineItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	BatchNumber  *string `json:"batch_number,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"required"`
	ExpiryDate   *string `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MinimumStock float64 `json:"minimum_stock" validate:"gte=0"`
}

type UpdateInventoryItemRequest struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	BatchNumber  *string  `json:"batch_number,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit         *string  `json:"unit,omitempty"`
	ExpiryDate   *string  `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MinimumStock *float64 `json:"minimum_stock,omitempty" validate:"omitempty,gte=0"`
}
