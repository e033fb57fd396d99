package payroll

import "errors"

var (
	// ErrEmployeeNotFound is returned when the referenced employee master
	// record does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrPayrollAlreadyExists is returned by Generate when a payroll was
	// already generated for the (employee, month, year) key. The existing
	// record is returned alongside it so callers can display it.
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this period")

	// ErrPayrollNotFound is returned when no payroll exists for the key.
	ErrPayrollNotFound = errors.New("payroll record not found")

	// ErrInvalidPeriod is returned for a month outside [1,12] or a
	// non-positive year.
	ErrInvalidPeriod = errors.New("invalid payroll period")
)
