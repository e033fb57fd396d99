package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payrollms/internal/domain/models"
	repo "payrollms/internal/repository/mongodb"
)

// Summarizer provides the monthly attendance reduction consumed by payroll
// generation.
type Summarizer interface {
	Summarize(ctx context.Context, employeeID string, month, year int) (models.AttendanceSummary, error)
}

// Notifier announces generated payrolls to an external consumer. A nil
// notifier disables the announcements.
type Notifier interface {
	PayrollGenerated(ctx context.Context, payroll models.Payroll) error
}

// Service orchestrates payroll generation against the persistence ports.
// A payroll is generated at most once per (employee, month, year); the
// only way to regenerate is an explicit delete followed by a fresh
// generation, which recomputes attendance from the records as they stand
// at that moment.
type Service struct {
	payrolls   repo.PayrollRepository
	employees  repo.EmployeeRepository
	holidays   repo.HolidayRepository
	summarizer Summarizer
	notifier   Notifier
	logger     *zap.Logger
}

// NewService wires a payroll service instance.
func NewService(
	payrolls repo.PayrollRepository,
	employees repo.EmployeeRepository,
	holidays repo.HolidayRepository,
	summarizer Summarizer,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		payrolls:   payrolls,
		employees:  employees,
		holidays:   holidays,
		summarizer: summarizer,
		notifier:   notifier,
		logger:     logger,
	}
}

// Generate computes and persists the payroll for one employee and month.
// When a payroll already exists for the key it returns the stored record
// together with ErrPayrollAlreadyExists; it never recomputes silently.
// The existence check may race a concurrent Generate, in which case the
// unique index on the payrolls collection rejects the second insert and
// the loss surfaces as a persistence failure.
func (s *Service) Generate(ctx context.Context, employeeID string, month, year int, bonus float64) (*models.Payroll, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	existing, err := s.payrolls.GetByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("check existing payroll: %w", err)
	}
	if existing != nil {
		return existing, ErrPayrollAlreadyExists
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("lookup employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	summary, err := s.summarizer.Summarize(ctx, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("summarize attendance: %w", err)
	}

	holidays, err := s.holidays.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	workingDays := WorkingDays(month, year, holidays)

	payroll := Calculate(CalculationInput{
		Employee:      *employee,
		Month:         month,
		Year:          year,
		PresentDays:   summary.PresentDays,
		WorkingDays:   workingDays,
		LOPDays:       summary.LOPDays,
		OvertimeHours: summary.TotalOvertime,
		Bonus:         bonus,
	})
	payroll.PayrollID = uuid.NewString()

	if err := s.payrolls.Create(ctx, payroll); err != nil {
		// Includes the duplicate-key case where a concurrent generation won
		// the insert; callers can re-read to discover the winning record.
		return nil, fmt.Errorf("persist payroll: %w", err)
	}

	s.logger.Info("payroll generated",
		zap.String("employee_id", employeeID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Float64("net_salary", payroll.NetSalary))

	if s.notifier != nil {
		if err := s.notifier.PayrollGenerated(ctx, payroll); err != nil {
			s.logger.Warn("payroll notification failed", zap.Error(err))
		}
	}

	return &payroll, nil
}

// Get returns the payroll for one employee and month, or
// ErrPayrollNotFound when none was generated.
func (s *Service) Get(ctx context.Context, employeeID string, month, year int) (*models.Payroll, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	payroll, err := s.payrolls.GetByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("get payroll: %w", err)
	}
	if payroll == nil {
		return nil, ErrPayrollNotFound
	}
	return payroll, nil
}

// ListByPeriod returns every payroll generated for the given month.
func (s *Service) ListByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return s.payrolls.ListByPeriod(ctx, month, year)
}

// ListByEmployee returns an employee's payroll history, newest first.
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]models.Payroll, error) {
	return s.payrolls.ListByEmployee(ctx, employeeID)
}

// Delete removes the payroll for one employee and month. Deleting and
// regenerating is the only supported recompute path.
func (s *Service) Delete(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if err := validatePeriod(month, year); err != nil {
		return false, err
	}

	deleted, err := s.payrolls.Delete(ctx, employeeID, month, year)
	if err != nil {
		return false, fmt.Errorf("delete payroll: %w", err)
	}
	if deleted {
		s.logger.Info("payroll deleted",
			zap.String("employee_id", employeeID),
			zap.Int("month", month),
			zap.Int("year", year))
	}
	return deleted, nil
}

// GenerateForPeriod runs payroll generation for every active employee.
// Employees with an existing payroll for the period are skipped; other
// failures are logged and counted without aborting the batch.
func (s *Service) GenerateForPeriod(ctx context.Context, month, year int) (generated, skipped, failed int, err error) {
	if err := validatePeriod(month, year); err != nil {
		return 0, 0, 0, err
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("list active employees: %w", err)
	}

	for _, emp := range employees {
		_, genErr := s.Generate(ctx, emp.EmployeeID, month, year, 0)
		switch {
		case genErr == nil:
			generated++
		case errors.Is(genErr, ErrPayrollAlreadyExists):
			skipped++
		default:
			failed++
			s.logger.Error("batch payroll generation failed",
				zap.String("employee_id", emp.EmployeeID),
				zap.Error(genErr))
		}
	}

	return generated, skipped, failed, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year <= 0 {
		return fmt.Errorf("%w: month=%d year=%d", ErrInvalidPeriod, month, year)
	}
	return nil
}
