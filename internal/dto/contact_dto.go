package dto

type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required,min=10,max=5000"`
}

type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

type SetSettingRequest struct {
	Value string `json:"value" validate:"required"`
	Type  string `json:"type" validate:"omitempty,oneof=string bool int json"`
}
