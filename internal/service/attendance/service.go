package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payrollms/internal/domain/models"
	repo "payrollms/internal/repository/mongodb"
)

// Service owns attendance marking and the monthly aggregation consumed by
// payroll generation.
type Service struct {
	repo   repo.AttendanceRepository
	logger *zap.Logger
}

// NewService wires a new attendance service instance.
func NewService(repository repo.AttendanceRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// Mark records or updates the attendance for one employee-day. A check-in
// time makes the day present, otherwise it is recorded absent.
func (s *Service) Mark(ctx context.Context, employeeID string, date time.Time, checkIn, checkOut string) (*models.Attendance, error) {
	existing, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("lookup attendance: %w", err)
	}

	status := models.AttendanceAbsent
	if checkIn != "" {
		status = models.AttendancePresent
	}

	if existing != nil {
		existing.CheckInTime = checkIn
		existing.CheckOutTime = checkOut
		existing.Status = status
		if err := s.repo.Update(ctx, *existing); err != nil {
			return nil, fmt.Errorf("update attendance: %w", err)
		}
		return existing, nil
	}

	att := models.Attendance{
		AttendanceID: uuid.NewString(),
		EmployeeID:   employeeID,
		Date:         date,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Status:       status,
	}
	if err := s.repo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	s.logger.Info("attendance marked",
		zap.String("employee_id", employeeID),
		zap.String("date", date.Format("2006-01-02")),
		zap.String("status", string(status)))

	return &att, nil
}

// MarkLOP flags one employee-day as loss of pay, creating the record when
// the day was never marked. The flag can be applied retroactively on top
// of any prior status.
func (s *Service) MarkLOP(ctx context.Context, employeeID string, date time.Time) (*models.Attendance, error) {
	att, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("lookup attendance: %w", err)
	}

	if att == nil {
		att = &models.Attendance{
			AttendanceID: uuid.NewString(),
			EmployeeID:   employeeID,
			Date:         date,
			Status:       models.AttendanceLOP,
			LossOfPay:    true,
		}
		if err := s.repo.Create(ctx, *att); err != nil {
			return nil, fmt.Errorf("create lop attendance: %w", err)
		}
		return att, nil
	}

	att.LossOfPay = true
	att.Status = models.AttendanceLOP
	if err := s.repo.Update(ctx, *att); err != nil {
		return nil, fmt.Errorf("update lop attendance: %w", err)
	}
	return att, nil
}

// ListMonth returns the raw attendance records for one employee and month.
func (s *Service) ListMonth(ctx context.Context, employeeID string, month, year int) ([]models.Attendance, error) {
	return s.repo.ListByEmployeeMonth(ctx, employeeID, month, year)
}

// Summarize reduces a month of attendance records into the counters payroll
// generation needs. An employee with no records for the month yields an
// all-zero summary, which is valid input downstream. The LOP count follows
// the flag rather than the status so retroactively marked days are included.
func (s *Service) Summarize(ctx context.Context, employeeID string, month, year int) (models.AttendanceSummary, error) {
	records, err := s.repo.ListByEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return models.AttendanceSummary{}, fmt.Errorf("load monthly attendance: %w", err)
	}

	var summary models.AttendanceSummary
	for _, att := range records {
		switch att.Status {
		case models.AttendancePresent:
			summary.PresentDays++
		case models.AttendanceAbsent:
			summary.AbsentDays++
		}
		if att.LossOfPay {
			summary.LOPDays++
		}
		summary.TotalOvertime += att.OvertimeHours
	}
	summary.TotalDays = len(records)

	return summary, nil
}
