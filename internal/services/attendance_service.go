package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// checkInFor returns the wall-clock check-in time for a status. Present and
// half-day imply the person showed up; absent and leave clear the time.
func checkInFor(status string, now time.Time) *string {
	if status == models.AttendancePresent || status == models.AttendanceHalfDay {
		s := now.Format("15:04:05")
		return &s
	}
	return nil
}

// Mark upserts the attendance record for (staffID, day). Re-marking the same
// staff/day replaces status and times wholesale; last write wins.
func (s *AttendanceService) Mark(staffID uuid.UUID, day time.Time, status string, markedBy uuid.UUID) (*models.AttendanceRecord, error) {
	if !models.IsValidAttendanceStatus(status) {
		return nil, ErrInvalidAttendanceStatus
	}

	record := models.AttendanceRecord{
		ID:           uuid.New(),
		StaffID:      staffID,
		Date:         day.Truncate(24 * time.Hour),
		Status:       status,
		CheckInTime:  checkInFor(status, time.Now()),
		CheckOutTime: nil,
		MarkedBy:     &markedBy,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "check_in_time", "check_out_time", "marked_by", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	// Re-read so callers see the surviving row, not the candidate insert.
	return s.ForDate(staffID, record.Date)
}

// ForDate returns the record for one staff member on one day.
func (s *AttendanceService) ForDate(staffID uuid.UUID, day time.Time) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := s.db.Where("staff_id = ? AND date = ?", staffID, day.Truncate(24*time.Hour)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	return &record, nil
}

// List returns records for a staff member within [from, to], newest first.
func (s *AttendanceService) List(staffID uuid.UUID, from, to time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := s.db.Where("staff_id = ? AND date >= ? AND date <= ?", staffID, from, to).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	return records, nil
}

// MonthlyStats are per-status tallies for one staff member and month. Days
// without a record are simply not counted.
type MonthlyStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"halfDay"`
	Leave   int `json:"leave"`
}

func (m MonthlyStats) Total() int {
	return m.Present + m.Absent + m.HalfDay + m.Leave
}

// MonthRange returns the inclusive first and last day of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// TallyMonth filters records to the given calendar month and tallies them by
// status. Order of the input does not matter.
func TallyMonth(records []models.AttendanceRecord, year int, month time.Month) MonthlyStats {
	start, end := MonthRange(year, month)
	var stats MonthlyStats
	for _, r := range records {
		day := r.Date.Truncate(24 * time.Hour)
		if day.Before(start) || day.After(end) {
			continue
		}
		switch r.Status {
		case models.AttendancePresent:
			stats.Present++
		case models.AttendanceAbsent:
			stats.Absent++
		case models.AttendanceHalfDay:
			stats.HalfDay++
		case models.AttendanceLeave:
			stats.Leave++
		}
	}
	return stats
}

// AttendanceRate is the percentage of marked days attended, with half days
// counting half. Zero records yield a rate of 0 rather than dividing by zero.
func AttendanceRate(stats MonthlyStats) int {
	total := stats.Total()
	if total == 0 {
		return 0
	}
	attended := float64(stats.Present) + 0.5*float64(stats.HalfDay)
	return int(math.Round(100 * attended / float64(total)))
}

// MonthlyStatsFor fetches one staff member's records for a month and tallies
// them. The tally itself is pure; this wrapper only does the fetch.
func (s *AttendanceService) MonthlyStatsFor(staffID uuid.UUID, year int, month time.Month) (MonthlyStats, error) {
	start, end := MonthRange(year, month)
	records, err := s.List(staffID, start, end)
	if err != nil {
		return MonthlyStats{}, err
	}
	return TallyMonth(records, year, month), nil
}
