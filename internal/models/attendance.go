package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half_day"
	AttendanceLeave   = "leave"
)

func IsValidAttendanceStatus(status string) bool {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceLeave:
		return true
	}
	return false
}

// AttendanceRecord holds one staff member's attendance for one calendar day.
// The (staff_id, date) pair is unique; re-marking the same day replaces the
// prior record via an upsert. Times are wall-clock strings (HH:MM:SS).
type AttendanceRecord struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_staff_date,priority:1" json:"staff_id"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_staff_date,priority:2" json:"date"`
	Status       string     `gorm:"size:20;not null" json:"status"`
	CheckInTime  *string    `gorm:"size:8" json:"check_in_time"`
	CheckOutTime *string    `gorm:"size:8" json:"check_out_time"`
	Notes        *string    `gorm:"size:500" json:"notes,omitempty"`
	MarkedBy     *uuid.UUID `gorm:"type:uuid" json:"marked_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Staff        Staff      `gorm:"foreignKey:StaffID" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}
