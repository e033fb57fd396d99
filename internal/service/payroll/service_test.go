package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollms/internal/domain/models"
	"payrollms/internal/repository/mongodb"
)

type fakePayrollRepo struct {
	records    map[string]models.Payroll
	forceDupes bool
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]models.Payroll)}
}

func payrollKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%d/%d", employeeID, month, year)
}

func (f *fakePayrollRepo) Create(_ context.Context, payroll models.Payroll) error {
	key := payrollKey(payroll.EmployeeID, payroll.Month, payroll.Year)
	if _, exists := f.records[key]; exists || f.forceDupes {
		return fmt.Errorf("payroll %s: %w", key, mongodb.ErrDuplicateKey)
	}
	f.records[key] = payroll
	return nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (*models.Payroll, error) {
	if p, ok := f.records[payrollKey(employeeID, month, year)]; ok {
		copied := p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakePayrollRepo) ListByPeriod(_ context.Context, month, year int) ([]models.Payroll, error) {
	var out []models.Payroll
	for _, p := range f.records {
		if p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string) ([]models.Payroll, error) {
	var out []models.Payroll
	for _, p := range f.records {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) Delete(_ context.Context, employeeID string, month, year int) (bool, error) {
	key := payrollKey(employeeID, month, year)
	if _, ok := f.records[key]; !ok {
		return false, nil
	}
	delete(f.records, key)
	return true, nil
}

type fakeEmployeeRepo struct {
	employees map[string]models.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, employeeID string) (*models.Employee, error) {
	if e, ok := f.employees[employeeID]; ok {
		copied := e
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range f.employees {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holidays []models.Holiday
}

func (f *fakeHolidayRepo) ListActive(_ context.Context) ([]models.Holiday, error) {
	return f.holidays, nil
}

type fakeSummarizer struct {
	summaries map[string]models.AttendanceSummary
	err       error
}

func (f *fakeSummarizer) Summarize(_ context.Context, employeeID string, _, _ int) (models.AttendanceSummary, error) {
	if f.err != nil {
		return models.AttendanceSummary{}, f.err
	}
	return f.summaries[employeeID], nil
}

type fakeNotifier struct {
	events []models.Payroll
	err    error
}

func (f *fakeNotifier) PayrollGenerated(_ context.Context, payroll models.Payroll) error {
	f.events = append(f.events, payroll)
	return f.err
}

type serviceFixture struct {
	svc       *Service
	payrolls  *fakePayrollRepo
	notifier  *fakeNotifier
	employees *fakeEmployeeRepo
}

func newServiceFixture() *serviceFixture {
	payrolls := newFakePayrollRepo()
	employees := &fakeEmployeeRepo{employees: map[string]models.Employee{
		"EMP001": {EmployeeID: "EMP001", Name: "Asha Verma", BasicSalary: 30000, Status: models.EmployeeActive},
		"EMP002": {EmployeeID: "EMP002", Name: "Ravi Nair", BasicSalary: 18000, Status: models.EmployeeActive},
		"EMP900": {EmployeeID: "EMP900", Name: "Left Lastyear", BasicSalary: 25000, Status: models.EmployeeInactive},
	}}
	holidays := &fakeHolidayRepo{holidays: []models.Holiday{
		{HolidayID: "HOL1", Name: "Festival", Date: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), IsActive: true},
	}}
	summarizer := &fakeSummarizer{summaries: map[string]models.AttendanceSummary{
		"EMP001": {PresentDays: 20, AbsentDays: 1, LOPDays: 1, TotalOvertime: 4, TotalDays: 22},
		"EMP002": {PresentDays: 22, TotalDays: 22},
	}}
	notifier := &fakeNotifier{}

	return &serviceFixture{
		svc:       NewService(payrolls, employees, holidays, summarizer, notifier, nil),
		payrolls:  payrolls,
		notifier:  notifier,
		employees: employees,
	}
}

func TestGenerateComputesAndPersists(t *testing.T) {
	fx := newServiceFixture()

	result, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 500)
	require.NoError(t, err)
	require.NotNil(t, result)

	// July 2025 has 23 weekdays minus the registered holiday.
	assert.Equal(t, 22, result.WorkingDays)
	assert.Equal(t, 20, result.PresentDays)
	assert.Equal(t, 1, result.LOPDays)
	assert.NotEmpty(t, result.PayrollID)
	assert.Equal(t, models.PayrollProcessed, result.Status)
	assert.InDelta(t, result.GrossSalary-result.TotalDeductions, result.NetSalary, tolerance)

	stored, err := fx.payrolls.GetByEmployeePeriod(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.PayrollID, stored.PayrollID)
}

func TestGenerateIsIdempotent(t *testing.T) {
	fx := newServiceFixture()

	first, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)

	second, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.ErrorIs(t, err, ErrPayrollAlreadyExists)
	require.NotNil(t, second)
	assert.Equal(t, first.PayrollID, second.PayrollID)

	stored, err := fx.payrolls.GetByEmployeePeriod(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, first.PayrollID, stored.PayrollID)
}

func TestGenerateEmployeeNotFound(t *testing.T) {
	fx := newServiceFixture()

	result, err := fx.svc.Generate(context.Background(), "EMP404", 7, 2025, 0)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Nil(t, result)
}

func TestGenerateInvalidPeriod(t *testing.T) {
	fx := newServiceFixture()

	_, err := fx.svc.Generate(context.Background(), "EMP001", 13, 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = fx.svc.Generate(context.Background(), "EMP001", 0, 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGenerateSurfacesInsertRace(t *testing.T) {
	fx := newServiceFixture()
	// The existence check passes but a concurrent writer wins the insert;
	// the unique index rejection must come back as a failure, never as a
	// silent duplicate.
	fx.payrolls.forceDupes = true

	result, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, mongodb.ErrDuplicateKey)
	assert.NotErrorIs(t, err, ErrPayrollAlreadyExists)
}

func TestDeleteThenRegenerate(t *testing.T) {
	fx := newServiceFixture()

	first, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)

	deleted, err := fx.svc.Delete(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)
	assert.True(t, deleted)

	regenerated, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)
	assert.NotEqual(t, first.PayrollID, regenerated.PayrollID)

	deleted, err = fx.svc.Delete(context.Background(), "EMP404", 7, 2025)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetPayroll(t *testing.T) {
	fx := newServiceFixture()

	_, err := fx.svc.Get(context.Background(), "EMP001", 7, 2025)
	assert.ErrorIs(t, err, ErrPayrollNotFound)

	generated, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)

	got, err := fx.svc.Get(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, generated.PayrollID, got.PayrollID)
}

func TestListByPeriod(t *testing.T) {
	fx := newServiceFixture()

	_, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)
	_, err = fx.svc.Generate(context.Background(), "EMP002", 7, 2025, 0)
	require.NoError(t, err)
	_, err = fx.svc.Generate(context.Background(), "EMP001", 8, 2025, 0)
	require.NoError(t, err)

	payrolls, err := fx.svc.ListByPeriod(context.Background(), 7, 2025)
	require.NoError(t, err)
	assert.Len(t, payrolls, 2)
}

func TestGenerateNotifies(t *testing.T) {
	fx := newServiceFixture()

	result, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	require.NoError(t, err)

	require.Len(t, fx.notifier.events, 1)
	assert.Equal(t, result.PayrollID, fx.notifier.events[0].PayrollID)
}

func TestGenerateToleratesNotifierFailure(t *testing.T) {
	fx := newServiceFixture()
	fx.notifier.err = errors.New("webhook down")

	_, err := fx.svc.Generate(context.Background(), "EMP001", 7, 2025, 0)
	assert.NoError(t, err)
}

func TestGenerateForPeriod(t *testing.T) {
	fx := newServiceFixture()

	// EMP002 was already settled for the period; only EMP001 remains.
	_, err := fx.svc.Generate(context.Background(), "EMP002", 7, 2025, 0)
	require.NoError(t, err)

	generated, skipped, failed, err := fx.svc.GenerateForPeriod(context.Background(), 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, generated)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 0, failed)

	// The inactive employee never enters the batch.
	_, err = fx.svc.Get(context.Background(), "EMP900", 7, 2025)
	assert.ErrorIs(t, err, ErrPayrollNotFound)
}
