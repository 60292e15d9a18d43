package dto

type CreateIncomeRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	CategoryID      *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Source          *string `json:"source,omitempty"`
	Description     *string `json:"description,omitempty"`
	ReceiptNumber   *string `json:"receipt_number,omitempty"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
}

type CreateExpenseRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	CategoryID      *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Description     *string `json:"description,omitempty"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
}

type ExpenseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type CreateFundRequest struct {
	Name        string  `json:"name" validate:"required"`
	Balance     float64 `json:"balance" validate:"gte=0"`
	Description *string `json:"description,omitempty"`
}

type UpdateFundBalanceRequest struct {
	Balance float64 `json:"balance" validate:"gte=0"`
}
