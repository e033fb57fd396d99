package models

import "time"

// AttendanceStatus is the recorded state of a single attendance day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLOP     AttendanceStatus = "lop"
)

// Attendance is one employee-day record. At most one exists per
// (employee_id, date); the collection carries a unique index on that pair.
type Attendance struct {
	AttendanceID  string           `bson:"attendance_id" json:"attendance_id"`
	EmployeeID    string           `bson:"employee_id" json:"employee_id"`
	Date          time.Time        `bson:"date" json:"date"`
	CheckInTime   string           `bson:"checkin_time,omitempty" json:"checkin_time,omitempty"`
	CheckOutTime  string           `bson:"checkout_time,omitempty" json:"checkout_time,omitempty"`
	Status        AttendanceStatus `bson:"status" json:"status"`
	OvertimeHours float64          `bson:"overtime_hours" json:"overtime_hours"`
	LossOfPay     bool             `bson:"lop" json:"lop"`
}

// AttendanceSummary is the per-month reduction of an employee's attendance
// records. It is derived on demand and never persisted, so it always
// reflects the attendance state at generation time.
type AttendanceSummary struct {
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	LOPDays       int     `json:"lop_days"`
	TotalOvertime float64 `json:"total_overtime"`
	TotalDays     int     `json:"total_days"`
}
