package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin          = "admin"
	RoleFinance        = "finance"
	RoleProjectManager = "project_manager"
	RoleVolunteer      = "volunteer"
	RoleAuditor        = "auditor"
)

// Roles lists every assignable role.
var Roles = []string{RoleAdmin, RoleFinance, RoleProjectManager, RoleVolunteer, RoleAuditor}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserRole is a single role assignment. Rows are inserted and deleted,
// never updated; the (user_id, role) pair is unique.
type UserRole struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role,priority:1" json:"user_id"`
	Role       string     `gorm:"size:30;not null;uniqueIndex:idx_user_roles_user_role,priority:2" json:"role"`
	AssignedBy *uuid.UUID `gorm:"type:uuid" json:"assigned_by,omitempty"`
	AssignedAt time.Time  `gorm:"autoCreateTime" json:"assigned_at"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
