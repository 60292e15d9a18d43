package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrExpenseNotFound      = errors.New("expense record not found")
	ErrInvalidTransition    = errors.New("expense status can only change from pending")
	ErrInvalidExpenseStatus = errors.New("invalid expense status")
	ErrFundNameTaken        = errors.New("fund account name already exists")
	ErrFundNotFound         = errors.New("fund account not found")
)

// UncategorizedLabel groups records that have no category in reports.
const UncategorizedLabel = "Uncategorized"

type FinanceService struct {
	db *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

// --- income ---

func (s *FinanceService) AddIncome(rec *models.IncomeRecord) error {
	if rec.Amount <= 0 {
		return ErrInvalidAmount
	}
	rec.ID = uuid.New()
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create income record: %w", err)
	}
	return nil
}

func (s *FinanceService) ListIncome(from, to time.Time) ([]models.IncomeRecord, error) {
	var records []models.IncomeRecord
	err := s.db.Preload("Category").
		Where("transaction_date >= ? AND transaction_date <= ?", from, to).
		Order("transaction_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income records: %w", err)
	}
	return records, nil
}

func (s *FinanceService) IncomeCategories() ([]models.IncomeCategory, error) {
	var categories []models.IncomeCategory
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch income categories: %w", err)
	}
	return categories, nil
}

// --- expenses ---

func (s *FinanceService) AddExpense(rec *models.ExpenseRecord) error {
	if rec.Amount <= 0 {
		return ErrInvalidAmount
	}
	rec.ID = uuid.New()
	rec.Status = models.ExpensePending
	rec.ApprovedBy = nil
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create expense record: %w", err)
	}
	return nil
}

func (s *FinanceService) ListExpenses(from, to time.Time) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	err := s.db.Preload("Category").
		Where("transaction_date >= ? AND transaction_date <= ?", from, to).
		Order("transaction_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense records: %w", err)
	}
	return records, nil
}

func (s *FinanceService) ExpenseCategories() ([]models.ExpenseCategory, error) {
	var categories []models.ExpenseCategory
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch expense categories: %w", err)
	}
	return categories, nil
}

// CanTransition reports whether an expense may move between the two states.
// Pending may become approved or rejected; both are terminal.
func CanTransition(from, to string) bool {
	if from != models.ExpensePending {
		return false
	}
	return to == models.ExpenseApproved || to == models.ExpenseRejected
}

// SetExpenseStatus applies the approval decision. The transition happens at
// most once; approved and rejected records cannot change again.
func (s *FinanceService) SetExpenseStatus(id uuid.UUID, status string, approver uuid.UUID) (*models.ExpenseRecord, error) {
	if status != models.ExpenseApproved && status != models.ExpenseRejected {
		return nil, ErrInvalidExpenseStatus
	}

	var rec models.ExpenseRecord
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to fetch expense record: %w", err)
	}

	if !CanTransition(rec.Status, status) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{
		"status":      status,
		"approved_by": approver,
	}
	// Guard against a racing approver: the WHERE keeps the transition
	// single-shot even if two decisions arrive together.
	result := s.db.Model(&models.ExpenseRecord{}).
		Where("id = ? AND status = ?", id, models.ExpensePending).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update expense status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	rec.Status = status
	rec.ApprovedBy = &approver
	return &rec, nil
}

// --- fund accounts ---

func (s *FinanceService) CreateFund(fund *models.FundAccount) error {
	var existing models.FundAccount
	if err := s.db.Where("name = ?", fund.Name).First(&existing).Error; err == nil {
		return ErrFundNameTaken
	}
	fund.ID = uuid.New()
	if err := s.db.Create(fund).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFundNameTaken
		}
		return fmt.Errorf("failed to create fund account: %w", err)
	}
	return nil
}

func (s *FinanceService) ListFunds() ([]models.FundAccount, error) {
	var funds []models.FundAccount
	if err := s.db.Order("name").Find(&funds).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch fund accounts: %w", err)
	}
	return funds, nil
}

// UpdateFundBalance sets the stored balance directly. Balances are tracked
// independently of posted transactions.
func (s *FinanceService) UpdateFundBalance(id uuid.UUID, balance float64) (*models.FundAccount, error) {
	var fund models.FundAccount
	if err := s.db.First(&fund, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to fetch fund account: %w", err)
	}
	if err := s.db.Model(&fund).Update("balance", balance).Error; err != nil {
		return nil, fmt.Errorf("failed to update fund balance: %w", err)
	}
	fund.Balance = balance
	return &fund, nil
}

// --- reporting ---

type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type Report struct {
	TotalIncome        float64           `json:"totalIncome"`
	TotalExpenses      float64           `json:"totalExpenses"`
	NetBalance         float64           `json:"netBalance"`
	ApprovedExpenses   float64           `json:"approvedExpenses"`
	PendingExpenses    float64           `json:"pendingExpenses"`
	IncomeByCategory   []CategorySummary `json:"incomeByCategory"`
	ExpensesByCategory []CategorySummary `json:"expensesByCategory"`
}

// BuildReport aggregates already-fetched records. Total expenses include
// every status, rejected ones too; the total reflects all recorded spend
// intent, and only the approved/pending buckets distinguish outcomes.
func BuildReport(income []models.IncomeRecord, expenses []models.ExpenseRecord) Report {
	report := Report{}

	incomeByCategory := make(map[string]float64)
	for _, r := range income {
		report.TotalIncome += r.Amount
		name := UncategorizedLabel
		if r.Category != nil {
			name = r.Category.Name
		}
		incomeByCategory[name] += r.Amount
	}

	expensesByCategory := make(map[string]float64)
	for _, r := range expenses {
		report.TotalExpenses += r.Amount
		switch r.Status {
		case models.ExpenseApproved:
			report.ApprovedExpenses += r.Amount
		case models.ExpensePending:
			report.PendingExpenses += r.Amount
		}
		name := UncategorizedLabel
		if r.Category != nil {
			name = r.Category.Name
		}
		expensesByCategory[name] += r.Amount
	}

	report.NetBalance = report.TotalIncome - report.TotalExpenses
	report.IncomeByCategory = sortedSummaries(incomeByCategory)
	report.ExpensesByCategory = sortedSummaries(expensesByCategory)
	return report
}

func sortedSummaries(byCategory map[string]float64) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(byCategory))
	for name, total := range byCategory {
		summaries = append(summaries, CategorySummary{Category: name, Total: total})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Total != summaries[j].Total {
			return summaries[i].Total > summaries[j].Total
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// GenerateReport fetches income and expenses in [from, to] and aggregates
// them into a report.
func (s *FinanceService) GenerateReport(from, to time.Time) (Report, error) {
	income, err := s.ListIncome(from, to)
	if err != nil {
		return Report{}, err
	}
	expenses, err := s.ListExpenses(from, to)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(income, expenses), nil
}
