package dto

type CreateStaffRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role" validate:"required"`
	Department *string `json:"department,omitempty"`
	JoinDate   string  `json:"join_date" validate:"required,datetime=2006-01-02"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type UpdateStaffRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
