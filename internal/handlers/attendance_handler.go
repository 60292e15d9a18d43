package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/services"
	"github.com/sevasetu/ngo-backend/internal/session"
)

type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark upserts one staff member's attendance for one day.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	markedBy, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.MarkAttendanceRequest
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

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff_id",
		})
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date",
		})
	}

	record, err := h.attendanceService.Mark(staffID, day, req.Status, markedBy)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAttendanceStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to mark attendance",
		})
	}
	return c.JSON(record)
}

// List returns a staff member's records within an optional date range.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staff_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff id",
		})
	}

	from, to, err := dateRangeOrMonth(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date range",
		})
	}

	records, err := h.attendanceService.List(staffID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch attendance",
		})
	}
	return c.JSON(records)
}

// ForDate returns the single record for a staff member on a given day, if any.
func (h *AttendanceHandler) ForDate(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staff_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff id",
		})
	}
	day, err := parseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date",
		})
	}

	record, err := h.attendanceService.ForDate(staffID, day)
	if err != nil {
		if errors.Is(err, services.ErrAttendanceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch attendance",
		})
	}
	return c.JSON(record)
}

// MonthlyStats returns status tallies and attendance rate for one month.
func (h *AttendanceHandler) MonthlyStats(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staff_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid staff id",
		})
	}

	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid month",
		})
	}

	stats, err := h.attendanceService.MonthlyStatsFor(staffID, year, time.Month(month))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}

	return c.JSON(dto.MonthlyStatsResponse{
		StaffID: staffID.String(),
		Year:    year,
		Month:   month,
		Present: stats.Present,
		Absent:  stats.Absent,
		HalfDay: stats.HalfDay,
		Leave:   stats.Leave,
		Rate:    services.AttendanceRate(stats),
	})
}
