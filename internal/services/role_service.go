package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidRole   = errors.New("unknown role")
	ErrDuplicateRole = errors.New("user already has this role")
	ErrRoleNotFound  = errors.New("role assignment not found")
	ErrSelfDemotion  = errors.New("cannot remove your own admin role")
)

// Capabilities are the coarse access flags derived from a user's role set.
// A zero Capabilities value means no access, which is also the fail-closed
// result when roles cannot be resolved.
type Capabilities struct {
	IsStaff   bool `json:"is_staff"`
	IsFinance bool `json:"is_finance"`
	IsAdmin   bool `json:"is_admin"`
}

// DeriveCapabilities computes capability flags from a role set. Any role at
// all grants staff access; finance requires the finance or admin role.
func DeriveCapabilities(roles []string) Capabilities {
	caps := Capabilities{IsStaff: len(roles) > 0}
	for _, r := range roles {
		switch r {
		case models.RoleAdmin:
			caps.IsAdmin = true
			caps.IsFinance = true
		case models.RoleFinance:
			caps.IsFinance = true
		}
	}
	return caps
}

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// RolesOf returns the role names assigned to a user.
func (s *RoleService) RolesOf(userID uuid.UUID) ([]string, error) {
	var assignments []models.UserRole
	if err := s.db.Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}
	roles := make([]string, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, a.Role)
	}
	return roles, nil
}

// Resolve fetches a user's roles and derives capability flags. On error the
// zero value is returned alongside the error; callers treat that as denied.
func (s *RoleService) Resolve(userID uuid.UUID) (Capabilities, error) {
	roles, err := s.RolesOf(userID)
	if err != nil {
		return Capabilities{}, err
	}
	return DeriveCapabilities(roles), nil
}

// AddRole assigns a role to a user. The (user_id, role) pair is unique; a
// duplicate assignment fails with ErrDuplicateRole. The assignment takes
// effect on the user's next request, there is no live push.
func (s *RoleService) AddRole(userID uuid.UUID, role string, assignedBy uuid.UUID) (*models.UserRole, error) {
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	var existing models.UserRole
	if err := s.db.Where("user_id = ? AND role = ?", userID, role).First(&existing).Error; err == nil {
		return nil, ErrDuplicateRole
	}

	assignment := models.UserRole{
		ID:         uuid.New(),
		UserID:     userID,
		Role:       role,
		AssignedBy: &assignedBy,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		// The unique index catches races the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRole
		}
		return nil, fmt.Errorf("failed to add role: %w", err)
	}
	return &assignment, nil
}

// RemoveRole deletes a single role assignment. Removing the caller's own
// admin role is refused to guard against accidental lockout; this is a
// convenience check only, the database policy stays authoritative.
func (s *RoleService) RemoveRole(callerID, userID uuid.UUID, role string) error {
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	if callerID == userID && role == models.RoleAdmin {
		return ErrSelfDemotion
	}

	result := s.db.Where("user_id = ? AND role = ?", userID, role).Delete(&models.UserRole{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotFound
	}
	return nil
}

// UserWithRoles pairs a user with their assigned role names.
type UserWithRoles struct {
	models.User
	Roles []string `json:"roles"`
}

// ListUsers returns all users joined with their role sets, newest first.
func (s *RoleService) ListUsers() ([]UserWithRoles, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	var assignments []models.UserRole
	if err := s.db.Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	rolesByUser := make(map[uuid.UUID][]string)
	for _, a := range assignments {
		rolesByUser[a.UserID] = append(rolesByUser[a.UserID], a.Role)
	}

	result := make([]UserWithRoles, 0, len(users))
	for _, u := range users {
		roles := rolesByUser[u.ID]
		if roles == nil {
			roles = []string{}
		}
		result = append(result, UserWithRoles{User: u, Roles: roles})
	}
	return result, nil
}
