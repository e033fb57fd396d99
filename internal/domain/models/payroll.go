package models

import "time"

// PayrollStatus is the lifecycle state of a payroll document.
type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "draft"
	PayrollProcessed PayrollStatus = "processed"
	// PayrollPaid is reserved for downstream payment tooling; nothing in
	// this service transitions a record into it.
	PayrollPaid PayrollStatus = "paid"
)

// Payroll is the finalized salary document for one employee and month,
// uniquely keyed by (employee_id, month, year) in MongoDB.
type Payroll struct {
	PayrollID  string `bson:"payroll_id" json:"payroll_id"`
	EmployeeID string `bson:"employee_id" json:"employee_id"`
	Month      int    `bson:"month" json:"month"`
	Year       int    `bson:"year" json:"year"`

	// Attendance counters
	PresentDays   int     `bson:"present_days" json:"present_days"`
	WorkingDays   int     `bson:"working_days" json:"working_days"`
	AbsentDays    int     `bson:"absent_days" json:"absent_days"`
	LeaveDays     int     `bson:"leave_days" json:"leave_days"`
	LOPDays       int     `bson:"lop_days" json:"lop_days"`
	OvertimeHours float64 `bson:"overtime_hours" json:"overtime_hours"`

	// Earnings
	BasicSalary float64 `bson:"basic_salary" json:"basic_salary"`
	HRA         float64 `bson:"hra" json:"hra"`
	DA          float64 `bson:"da" json:"da"`
	Allowances  float64 `bson:"allowances" json:"allowances"`
	Bonus       float64 `bson:"bonus" json:"bonus"`
	OvertimePay float64 `bson:"overtime_pay" json:"overtime_pay"`
	GrossSalary float64 `bson:"gross_salary" json:"gross_salary"`

	// Deductions
	PF              float64 `bson:"pf" json:"pf"`
	ESI             float64 `bson:"esi" json:"esi"`
	PT              float64 `bson:"pt" json:"pt"`
	LOPDeduction    float64 `bson:"lop_deduction" json:"lop_deduction"`
	OtherDeductions float64 `bson:"other_deductions" json:"other_deductions"`
	TotalDeductions float64 `bson:"total_deductions" json:"total_deductions"`

	NetSalary float64 `bson:"net_salary" json:"net_salary"`

	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	Status    PayrollStatus `bson:"status" json:"status"`
}
