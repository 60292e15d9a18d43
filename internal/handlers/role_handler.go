package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/middleware"
	"github.com/sevasetu/ngo-backend/internal/navigation"
	"github.com/sevasetu/ngo-backend/internal/services"
	"github.com/sevasetu/ngo-backend/internal/session"
)

// RoleHandler covers the user-management panel and the session bootstrap
// endpoints (profile, capabilities, gated navigation).
type RoleHandler struct {
	roleService *services.RoleService
	authService *services.AuthService
}

func NewRoleHandler(roleService *services.RoleService, authService *services.AuthService) *RoleHandler {
	return &RoleHandler{roleService: roleService, authService: authService}
}

// Me returns the logged-in user's profile, roles and capability flags. A
// roleless account is valid here; the response just carries empty roles so
// the client can show the "pending assignment" state.
func (h *RoleHandler) Me(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	roles, err := h.roleService.RolesOf(userID)
	if err != nil {
		// Fail closed: report no roles rather than erroring the whole call.
		roles = []string{}
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"roles":        roles,
		"capabilities": services.DeriveCapabilities(roles),
	})
}

// Navigation returns the admin menu filtered by the caller's capabilities.
func (h *RoleHandler) Navigation(c *fiber.Ctx) error {
	caps := middleware.Capabilities(c)
	return c.JSON(fiber.Map{
		"items": navigation.Filter(navigation.Menu(), caps),
	})
}

// ListUsers returns every user with their role set (admin panel).
func (h *RoleHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.roleService.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}
	return c.JSON(users)
}

func (h *RoleHandler) AddRole(c *fiber.Ctx) error {
	callerID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	var req dto.AddRoleRequest
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

	assignment, err := h.roleService.AddRole(userID, req.Role, callerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateRole):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add role",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (h *RoleHandler) RemoveRole(c *fiber.Ctx) error {
	callerID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}
	role := c.Params("role")

	if err := h.roleService.RemoveRole(callerID, userID, role); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDemotion):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrRoleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove role",
		})
	}

	return c.JSON(fiber.Map{"message": "Role removed"})
}
