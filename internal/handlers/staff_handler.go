package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/models"
	"github.com/sevasetu/ngo-backend/internal/services"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.staffService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch staff",
		})
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
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

	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid join_date",
		})
	}

	member := models.Staff{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		JoinDate:   joinDate,
		IsActive:   true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.staffService.Add(&member); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create staff member",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff id",
		})
	}

	var req dto.UpdateStaffRequest
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

	patch := map[string]interface{}{}
	if req.FullName != nil {
		patch["full_name"] = *req.FullName
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Role != nil {
		patch["role"] = *req.Role
	}
	if req.Department != nil {
		patch["department"] = *req.Department
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	member, err := h.staffService.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update staff member",
		})
	}
	return c.JSON(member)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff id",
		})
	}

	if err := h.staffService.Delete(id); err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete staff member",
		})
	}
	return c.JSON(fiber.Map{"message": "Staff member removed"})
}
