package dto

type AddRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin finance project_manager volunteer auditor"`
}
