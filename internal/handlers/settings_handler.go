package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

// SettingsHandler serves the editable public-site content (hero copy, impact
// numbers). Reads are public; writes are admin-only.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// GetSettings returns all settings as a key/value map with values coerced to
// their declared type.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var settings []models.SiteSetting
	if err := h.db.Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}

	result := make(map[string]interface{})
	for _, s := range settings {
		var value interface{}
		switch s.Type {
		case "bool":
			value, _ = strconv.ParseBool(s.Value)
		case "int":
			value, _ = strconv.Atoi(s.Value)
		case "json":
			json.Unmarshal([]byte(s.Value), &value)
		default:
			value = s.Value
		}
		result[s.Key] = value
	}
	return c.JSON(result)
}

// SetKey creates or updates one setting.
func (h *SettingsHandler) SetKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	var req dto.SetSettingRequest
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
	if req.Type == "" {
		req.Type = "string"
	}

	var setting models.SiteSetting
	err := h.db.Where("key = ?", key).First(&setting).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		setting = models.SiteSetting{
			ID:    uuid.New(),
			Key:   key,
			Value: req.Value,
			Type:  req.Type,
		}
		if err := h.db.Create(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create setting",
			})
		}
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to query setting",
		})
	default:
		setting.Value = req.Value
		setting.Type = req.Type
		setting.UpdatedAt = time.Now()
		if err := h.db.Save(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update setting",
			})
		}
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting updated successfully",
		"setting": fiber.Map{
			"key":   setting.Key,
			"value": setting.Value,
			"type":  setting.Type,
		},
	})
}

// DeleteKey removes one setting.
func (h *SettingsHandler) DeleteKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	result := h.db.Where("key = ?", key).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete setting",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Setting not found",
		})
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Setting deleted successfully",
	})
}
