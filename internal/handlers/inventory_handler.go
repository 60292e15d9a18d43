package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/models"
	"github.com/sevasetu/ngo-backend/internal/services"
	"github.com/sevasetu/ngo-backend/internal/session"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type foodItemView struct {
	models.FoodItem
	services.ItemStatus
}

type medicineItemView struct {
	models.MedicineItem
	services.ItemStatus
}

// ListFood returns food items with their derived stock/expiry badges.
func (h *InventoryHandler) ListFood(c *fiber.Ctx) error {
	items, err := h.inventoryService.ListFood()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch food inventory",
		})
	}

	now := time.Now()
	views := make([]foodItemView, 0, len(items))
	for _, item := range items {
		views = append(views, foodItemView{FoodItem: item, ItemStatus: services.ClassifyFood(item, now)})
	}
	return c.JSON(views)
}

func (h *InventoryHandler) CreateFood(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expiry_date",
		})
	}

	item := models.FoodItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ExpiryDate:   expiry,
		MinimumStock: req.MinimumStock,
		CreatedBy:    &userID,
	}
	if err := h.inventoryService.AddFood(&item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create food item",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *InventoryHandler) UpdateFood(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}

	patch, err := inventoryPatch(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	item, err := h.inventoryService.UpdateFood(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update food item",
		})
	}
	return c.JSON(item)
}

func (h *InventoryHandler) DeleteFood(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}
	if err := h.inventoryService.DeleteFood(id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete food item",
		})
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

// ListMedicine returns medicine items with derived badges; medicine uses the
// longer expiry lead times.
func (h *InventoryHandler) ListMedicine(c *fiber.Ctx) error {
	items, err := h.inventoryService.ListMedicine()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch medicine inventory",
		})
	}

	now := time.Now()
	views := make([]medicineItemView, 0, len(items))
	for _, item := range items {
		views = append(views, medicineItemView{MedicineItem: item, ItemStatus: services.ClassifyMedicine(item, now)})
	}
	return c.JSON(views)
}

func (h *InventoryHandler) CreateMedicine(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateMedicineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expiry_date",
		})
	}

	item := models.MedicineItem{
		Name:         req.Name,
		BatchNumber:  req.BatchNumber,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ExpiryDate:   expiry,
		MinimumStock: req.MinimumStock,
		CreatedBy:    &userID,
	}
	if err := h.inventoryService.AddMedicine(&item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create medicine item",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *InventoryHandler) UpdateMedicine(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}

	patch, err := inventoryPatch(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	item, err := h.inventoryService.UpdateMedicine(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update medicine item",
		})
	}
	return c.JSON(item)
}

func (h *InventoryHandler) DeleteMedicine(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item id",
		})
	}
	if err := h.inventoryService.DeleteMedicine(id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete medicine item",
		})
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// inventoryPatch builds a column patch from the shared update DTO.
func inventoryPatch(c *fiber.Ctx) (map[string]interface{}, error) {
	var req dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.BatchNumber != nil {
		patch["batch_number"] = *req.BatchNumber
	}
	if req.Manufacturer != nil {
		patch["manufacturer"] = *req.Manufacturer
	}
	if req.Quantity != nil {
		patch["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		patch["unit"] = *req.Unit
	}
	if req.MinimumStock != nil {
		patch["minimum_stock"] = *req.MinimumStock
	}
	if req.ExpiryDate != nil {
		expiry, err := parseOptionalDate(req.ExpiryDate)
		if err != nil {
			return nil, errors.New("invalid expiry_date")
		}
		patch["expiry_date"] = expiry
	}
	return patch, nil
}
