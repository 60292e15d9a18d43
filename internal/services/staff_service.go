package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff member not found")

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) List() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.db.Order("created_at DESC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Get(id uuid.UUID) (*models.Staff, error) {
	var member models.Staff
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	return &member, nil
}

func (s *StaffService) Add(member *models.Staff) error {
	member.ID = uuid.New()
	if err := s.db.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (s *StaffService) Update(id uuid.UUID, patch map[string]interface{}) (*models.Staff, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(member).Updates(patch).Error; err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return member, nil
}

// Delete removes a staff member and their attendance history.
func (s *StaffService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("staff_id = ?", id).Delete(&models.AttendanceRecord{})
		result := tx.Delete(&models.Staff{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete staff member: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrStaffNotFound
		}
		return nil
	})
}
