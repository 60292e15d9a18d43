package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/dto"
	"github.com/sevasetu/ngo-backend/internal/models"
	"github.com/sevasetu/ngo-backend/internal/services"
	"github.com/sevasetu/ngo-backend/internal/session"
)

type FinanceHandler struct {
	financeService *services.FinanceService
}

func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

func parseCategoryID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// --- income ---

func (h *FinanceHandler) ListIncome(c *fiber.Ctx) error {
	from, to, err := dateRangeOrMonth(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date range",
		})
	}

	records, err := h.financeService.ListIncome(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch income records",
		})
	}
	return c.JSON(records)
}

func (h *FinanceHandler) CreateIncome(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateIncomeRequest
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

	categoryID, err := parseCategoryID(req.CategoryID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category_id",
		})
	}
	txDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid transaction_date",
		})
	}

	record := models.IncomeRecord{
		Amount:          req.Amount,
		CategoryID:      categoryID,
		Source:          req.Source,
		Description:     req.Description,
		ReceiptNumber:   req.ReceiptNumber,
		TransactionDate: txDate,
		RecordedBy:      &userID,
	}
	if err := h.financeService.AddIncome(&record); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create income record",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *FinanceHandler) IncomeCategories(c *fiber.Ctx) error {
	categories, err := h.financeService.IncomeCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch categories",
		})
	}
	return c.JSON(categories)
}

// --- expenses ---

func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	from, to, err := dateRangeOrMonth(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date range",
		})
	}

	records, err := h.financeService.ListExpenses(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch expense records",
		})
	}
	return c.JSON(records)
}

func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateExpenseRequest
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

	categoryID, err := parseCategoryID(req.CategoryID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category_id",
		})
	}
	txDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid transaction_date",
		})
	}

	record := models.ExpenseRecord{
		Amount:          req.Amount,
		CategoryID:      categoryID,
		Description:     req.Description,
		TransactionDate: txDate,
		RecordedBy:      &userID,
	}
	if err := h.financeService.AddExpense(&record); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create expense record",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *FinanceHandler) ExpenseCategories(c *fiber.Ctx) error {
	categories, err := h.financeService.ExpenseCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch categories",
		})
	}
	return c.JSON(categories)
}

// SetExpenseStatus applies the approve/reject decision. Routed behind the
// finance guard; the decision is single-shot.
func (h *FinanceHandler) SetExpenseStatus(c *fiber.Ctx) error {
	approverID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expense id",
		})
	}

	var req dto.ExpenseStatusRequest
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

	record, err := h.financeService.SetExpenseStatus(id, req.Status, approverID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExpenseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrInvalidExpenseStatus):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update expense",
		})
	}
	return c.JSON(record)
}

// --- fund accounts ---

func (h *FinanceHandler) ListFunds(c *fiber.Ctx) error {
	funds, err := h.financeService.ListFunds()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch fund accounts",
		})
	}
	return c.JSON(funds)
}

func (h *FinanceHandler) CreateFund(c *fiber.Ctx) error {
	var req dto.CreateFundRequest
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

	fund := models.FundAccount{
		Name:        req.Name,
		Balance:     req.Balance,
		Description: req.Description,
	}
	if err := h.financeService.CreateFund(&fund); err != nil {
		if errors.Is(err, services.ErrFundNameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create fund account",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fund)
}

func (h *FinanceHandler) UpdateFundBalance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid fund id",
		})
	}

	var req dto.UpdateFundBalanceRequest
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

	fund, err := h.financeService.UpdateFundBalance(id, req.Balance)
	if err != nil {
		if errors.Is(err, services.ErrFundNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update fund account",
		})
	}
	return c.JSON(fund)
}

// --- reporting ---

// Report aggregates income and expenses within an inclusive date range.
func (h *FinanceHandler) Report(c *fiber.Ctx) error {
	from, to, err := dateRangeOrMonth(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid date range",
		})
	}

	report, err := h.financeService.GenerateReport(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate report",
		})
	}
	return c.JSON(report)
}
