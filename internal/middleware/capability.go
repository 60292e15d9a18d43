package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sevasetu/ngo-backend/internal/config"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/services"
	"github.com/sevasetu/ngo-backend/internal/session"
)

const capabilitiesKey = "capabilities"

// Capabilities returns the flags resolved for this request, or the zero
// value when no guard ran.
func Capabilities(c *fiber.Ctx) services.Capabilities {
	if caps, ok := c.Locals(capabilitiesKey).(services.Capabilities); ok {
		return caps
	}
	return services.Capabilities{}
}

// resolve derives capability flags for the current principal. Flags fail
// closed: an unresolvable or errored role lookup behaves as no roles at all.
// Config-listed bootstrap admins get full flags so the first operator can
// assign roles on a fresh database.
func resolve(c *fiber.Ctx, roleService *services.RoleService, cfg *config.Config) services.Capabilities {
	userID, err := session.UserID(c)
	if err != nil {
		return services.Capabilities{}
	}

	if isBootstrapAdmin(cfg, session.Email(c), userID.String()) {
		return services.Capabilities{IsStaff: true, IsFinance: true, IsAdmin: true}
	}

	caps, err := roleService.Resolve(userID)
	if err != nil {
		slog.Error("role resolution failed", "user_id", userID.String(), "error", err)
		return services.Capabilities{}
	}
	return caps
}

func isBootstrapAdmin(cfg *config.Config, email, userID string) bool {
	return contains(parseCSV(cfg.AdminEmails), email) ||
		contains(parseCSV(cfg.AdminUserIDs), userID)
}

// StaffRequired admits any principal holding at least one role. A user who
// is authenticated but roleless gets a distinct "pending assignment" message
// rather than a generic denial.
func StaffRequired(roleService *services.RoleService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := resolve(c, roleService, cfg)
		c.Locals(capabilitiesKey, caps)
		if !caps.IsStaff {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "No role assigned yet. Ask an administrator for access.",
			})
		}
		return c.Next()
	}
}

// FinanceRequired admits principals with the finance or admin role.
func FinanceRequired(roleService *services.RoleService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := resolve(c, roleService, cfg)
		c.Locals(capabilitiesKey, caps)
		if !caps.IsFinance {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Finance access required",
			})
		}
		return c.Next()
	}
}

// AdminRequired admits admins only.
func AdminRequired(roleService *services.RoleService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := resolve(c, roleService, cfg)
		c.Locals(capabilitiesKey, caps)
		if !caps.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Admin access required",
			})
		}
		return c.Next()
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
