package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func attRecord(date time.Time, status string) models.AttendanceRecord {
	return models.AttendanceRecord{Date: date, Status: status}
}

func TestTallyMonth(t *testing.T) {
	jan := func(day int) time.Time {
		return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
	}
	records := []models.AttendanceRecord{
		attRecord(jan(5), models.AttendancePresent),
		attRecord(jan(6), models.AttendancePresent),
		attRecord(jan(7), models.AttendanceAbsent),
		attRecord(jan(8), models.AttendanceHalfDay),
		attRecord(jan(9), models.AttendanceLeave),
		// Outside the month, must not be counted.
		attRecord(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), models.AttendancePresent),
		attRecord(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), models.AttendanceAbsent),
	}

	stats := TallyMonth(records, 2026, time.January)
	want := MonthlyStats{Present: 2, Absent: 1, HalfDay: 1, Leave: 1}
	if stats != want {
		t.Fatalf("TallyMonth = %+v, want %+v", stats, want)
	}
	if stats.Total() != 5 {
		t.Fatalf("Total = %d, want 5", stats.Total())
	}
}

func TestTallyMonthOrderInvariant(t *testing.T) {
	jan := func(day int) time.Time {
		return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
	}
	forward := []models.AttendanceRecord{
		attRecord(jan(1), models.AttendancePresent),
		attRecord(jan(2), models.AttendanceAbsent),
		attRecord(jan(3), models.AttendanceHalfDay),
	}
	reversed := []models.AttendanceRecord{forward[2], forward[1], forward[0]}

	if TallyMonth(forward, 2026, time.January) != TallyMonth(reversed, 2026, time.January) {
		t.Fatal("tally must not depend on record order")
	}
}

func TestTallyMonthIncludesMonthBoundaries(t *testing.T) {
	records := []models.AttendanceRecord{
		attRecord(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), models.AttendancePresent),
		attRecord(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), models.AttendancePresent),
	}
	stats := TallyMonth(records, 2026, time.January)
	if stats.Present != 2 {
		t.Fatalf("first and last day of month must both count, got %+v", stats)
	}
}

func TestTallyMonthEmpty(t *testing.T) {
	stats := TallyMonth(nil, 2026, time.March)
	if stats != (MonthlyStats{}) {
		t.Fatalf("empty input must tally to zero, got %+v", stats)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	if got := start.Format("2006-01-02"); got != "2024-02-01" {
		t.Fatalf("start = %s, want 2024-02-01", got)
	}
	// 2024 is a leap year.
	if got := end.Format("2006-01-02"); got != "2024-02-29" {
		t.Fatalf("end = %s, want 2024-02-29", got)
	}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name  string
		stats MonthlyStats
		want  int
	}{
		{"no records", MonthlyStats{}, 0},
		{"all present", MonthlyStats{Present: 20}, 100},
		{"all absent", MonthlyStats{Absent: 10}, 0},
		{"half days count half", MonthlyStats{HalfDay: 10}, 50},
		{"mixed", MonthlyStats{Present: 15, Absent: 3, HalfDay: 2}, 80},
		{"leave lowers the rate", MonthlyStats{Present: 1, Leave: 1}, 50},
		{"rounds to nearest", MonthlyStats{Present: 1, Absent: 2}, 33},
		{"rounds half up", MonthlyStats{Present: 1, HalfDay: 1}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRate(tt.stats); got != tt.want {
				t.Fatalf("AttendanceRate(%+v) = %d, want %d", tt.stats, got, tt.want)
			}
		})
	}
}

func TestCheckInFor(t *testing.T) {
	now := time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)

	for _, status := range []string{models.AttendancePresent, models.AttendanceHalfDay} {
		got := checkInFor(status, now)
		if got == nil {
			t.Fatalf("checkInFor(%q) = nil, want a time", status)
		}
		if *got != "09:30:00" {
			t.Fatalf("checkInFor(%q) = %q, want 09:30:00", status, *got)
		}
	}

	for _, status := range []string{models.AttendanceAbsent, models.AttendanceLeave} {
		if got := checkInFor(status, now); got != nil {
			t.Fatalf("checkInFor(%q) = %q, want nil", status, *got)
		}
	}
}

// openAttendanceDB builds an in-memory store with the same unique key the
// production schema carries on (staff_id, date).
func openAttendanceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	ddl := `CREATE TABLE attendance (
		id text PRIMARY KEY,
		staff_id text NOT NULL,
		date date NOT NULL,
		status text NOT NULL,
		check_in_time text,
		check_out_time text,
		notes text,
		marked_by text,
		created_at datetime,
		updated_at datetime
	)`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if err := db.Exec(`CREATE UNIQUE INDEX idx_attendance_staff_date ON attendance(staff_id, date)`).Error; err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	return db
}

func TestMarkReplacesSameDayRecord(t *testing.T) {
	db := openAttendanceDB(t)
	svc := NewAttendanceService(db)

	staffID := uuid.New()
	marker := uuid.New()
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	first, err := svc.Mark(staffID, day, models.AttendancePresent, marker)
	if err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if first.Status != models.AttendancePresent {
		t.Fatalf("status = %q, want %q", first.Status, models.AttendancePresent)
	}
	if first.CheckInTime == nil {
		t.Fatal("present mark must record a check-in time")
	}

	second, err := svc.Mark(staffID, day, models.AttendanceAbsent, marker)
	if err != nil {
		t.Fatalf("re-mark failed: %v", err)
	}
	if second.Status != models.AttendanceAbsent {
		t.Fatalf("status after re-mark = %q, want %q", second.Status, models.AttendanceAbsent)
	}
	if second.CheckInTime != nil {
		t.Fatalf("re-marking absent must clear check-in time, got %q", *second.CheckInTime)
	}
	if second.ID != first.ID {
		t.Fatalf("re-mark must update the existing row, not insert: %s != %s", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&models.AttendanceRecord{}).Where("staff_id = ?", staffID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per (staff, day), got %d", count)
	}
}

func TestMarkSeparateDaysKeepSeparateRows(t *testing.T) {
	db := openAttendanceDB(t)
	svc := NewAttendanceService(db)

	staffID := uuid.New()
	marker := uuid.New()
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	if _, err := svc.Mark(staffID, monday, models.AttendancePresent, marker); err != nil {
		t.Fatalf("mark monday failed: %v", err)
	}
	if _, err := svc.Mark(staffID, tuesday, models.AttendanceLeave, marker); err != nil {
		t.Fatalf("mark tuesday failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.AttendanceRecord{}).Where("staff_id = ?", staffID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected two rows for two days, got %d", count)
	}
}
