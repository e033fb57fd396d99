package payroll

import (
	"time"

	"payrollms/internal/domain/models"
)

const dateLayout = "2006-01-02"

// WorkingDays computes the number of official working days in a month:
// calendar days minus weekends minus active holidays that fall on
// weekdays. A holiday on a weekend is never subtracted twice because only
// non-weekend days are checked against the holiday set.
func WorkingDays(month, year int, holidays []models.Holiday) int {
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		if h.IsActive {
			holidaySet[h.Date.Format(dateLayout)] = struct{}{}
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	totalDays := first.AddDate(0, 1, -1).Day()

	workingDays := 0
	for day := 0; day < totalDays; day++ {
		date := first.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, ok := holidaySet[date.Format(dateLayout)]; ok {
			continue
		}
		workingDays++
	}

	return workingDays
}
