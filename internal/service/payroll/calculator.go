package payroll

import (
	"time"

	"payrollms/internal/domain/models"
)

// Fixed payroll policy. HRA, DA and allowances are percentages of the
// prorated basic component, not of the full monthly salary.
const (
	hraRate            = 0.40
	daRate             = 0.20
	allowanceRate      = 0.10
	overtimeMultiplier = 1.5
	workHoursPerDay    = 8

	pfRate          = 0.12
	pfCap           = 1800.0
	esiRate         = 0.0075
	esiGrossCeiling = 21000.0
)

// CalculationInput carries everything the calculator needs for one
// employee-month. Attendance counters come from the aggregator, working
// days from the calendar, bonus from the caller.
type CalculationInput struct {
	Employee      models.Employee
	Month         int
	Year          int
	PresentDays   int
	WorkingDays   int
	LOPDays       int
	OvertimeHours float64
	Bonus         float64
}

// Calculate produces a fully populated payroll document from its inputs.
// It is a total function: zero working days yields zero earnings rather
// than a division error, and inconsistent attendance counters are computed
// through (absent days may go negative). The result carries status
// processed; persistence and identity are the service's concern.
func Calculate(in CalculationInput) models.Payroll {
	var dailySalary float64
	if in.WorkingDays > 0 {
		dailySalary = in.Employee.BasicSalary / float64(in.WorkingDays)
	}

	basic := dailySalary * float64(in.PresentDays)
	lopDeduction := dailySalary * float64(in.LOPDays)

	hra := basic * hraRate
	da := basic * daRate
	allowances := basic * allowanceRate

	var hourlyRate float64
	if in.WorkingDays > 0 {
		hourlyRate = basic / float64(in.WorkingDays*workHoursPerDay)
	}
	overtimePay := in.OvertimeHours * hourlyRate * overtimeMultiplier

	gross := basic + hra + da + allowances + in.Bonus + overtimePay

	pf := basic * pfRate
	if pf > pfCap {
		pf = pfCap
	}

	var esi float64
	if gross < esiGrossCeiling {
		esi = gross * esiRate
	}

	pt := professionalTax(basic)

	totalDeductions := pf + esi + pt + lopDeduction

	return models.Payroll{
		EmployeeID:      in.Employee.EmployeeID,
		Month:           in.Month,
		Year:            in.Year,
		PresentDays:     in.PresentDays,
		WorkingDays:     in.WorkingDays,
		AbsentDays:      in.WorkingDays - in.PresentDays - in.LOPDays,
		LOPDays:         in.LOPDays,
		OvertimeHours:   in.OvertimeHours,
		BasicSalary:     basic,
		HRA:             hra,
		DA:              da,
		Allowances:      allowances,
		Bonus:           in.Bonus,
		OvertimePay:     overtimePay,
		GrossSalary:     gross,
		PF:              pf,
		ESI:             esi,
		PT:              pt,
		LOPDeduction:    lopDeduction,
		TotalDeductions: totalDeductions,
		NetSalary:       gross - totalDeductions,
		CreatedAt:       time.Now().UTC(),
		Status:          models.PayrollProcessed,
	}
}

// professionalTax looks up the slab amount for the prorated basic salary.
func professionalTax(basic float64) float64 {
	switch {
	case basic < 6000:
		return 0
	case basic < 9000:
		return 80
	case basic < 12000:
		return 150
	default:
		return 200
	}
}
