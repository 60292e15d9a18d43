package dto

type MarkAttendanceRequest struct {
	StaffID string `json:"staff_id" validate:"required,uuid4"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=present absent half_day leave"`
}

// MonthlyStatsResponse carries the per-status tallies plus the derived
// attendance rate used by the reporting view.
type MonthlyStatsResponse struct {
	StaffID string `json:"staff_id"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	HalfDay int    `json:"halfDay"`
	Leave   int    `json:"leave"`
	Rate    int    `json:"attendance_rate"`
}
