package models

import "time"

// EmployeeStatus marks whether an employee is currently on the payroll.
type EmployeeStatus int

const (
	EmployeeInactive EmployeeStatus = 0
	EmployeeActive   EmployeeStatus = 1
)

// Employee is the master record owned by the employee-management side.
// Payroll generation only ever reads it.
type Employee struct {
	EmployeeID  string         `bson:"employee_id" json:"employee_id"`
	Name        string         `bson:"employee_name" json:"employee_name"`
	Email       string         `bson:"email" json:"email"`
	BasicSalary float64        `bson:"basic_salary" json:"basic_salary"`
	JoiningDate time.Time      `bson:"joining_date" json:"joining_date"`
	Status      EmployeeStatus `bson:"status" json:"status"`
}

// IsActive reports whether the employee should be included in batch runs.
func (e Employee) IsActive() bool {
	return e.Status == EmployeeActive
}
