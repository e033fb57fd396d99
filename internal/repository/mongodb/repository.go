package mongodb

import (
	"context"
	"errors"
	"time"

	"payrollms/internal/domain/models"
)

// ErrDuplicateKey is returned when an insert violates one of the unique
// indexes (payrolls keyed by employee/month/year, attendance keyed by
// employee/date). The store-level index is the final word on uniqueness;
// callers must treat this as a lost race, not retry the insert.
var ErrDuplicateKey = errors.New("duplicate key")

// EmployeeRepository defines read access to employee master records.
type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*models.Employee, error)
	ListActive(ctx context.Context) ([]models.Employee, error)
}

// AttendanceRepository defines storage for per-day attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att models.Attendance) error
	Update(ctx context.Context, att models.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]models.Attendance, error)
}

// HolidayRepository defines read access to the holiday calendar.
type HolidayRepository interface {
	ListActive(ctx context.Context) ([]models.Holiday, error)
}

// PayrollRepository defines storage for finalized payroll documents.
type PayrollRepository interface {
	Create(ctx context.Context, payroll models.Payroll) error
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*models.Payroll, error)
	ListByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.Payroll, error)
	Delete(ctx context.Context, employeeID string, month, year int) (bool, error)
}
