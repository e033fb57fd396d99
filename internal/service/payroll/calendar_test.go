package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payrollms/internal/domain/models"
)

func holidayOn(year int, month time.Month, day int, active bool) models.Holiday {
	return models.Holiday{
		HolidayID: "HOL1",
		Name:      "Festival",
		Date:      time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		IsActive:  active,
	}
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		year     int
		holidays []models.Holiday
		expected int
	}{
		{
			// July 2025: 31 days, 8 weekend days, holiday on Friday the 4th.
			name:     "31-day month with midweek holiday",
			month:    7,
			year:     2025,
			holidays: []models.Holiday{holidayOn(2025, time.July, 4, true)},
			expected: 22,
		},
		{
			name:     "no holidays",
			month:    7,
			year:     2025,
			expected: 23,
		},
		{
			// A Saturday holiday must not be subtracted twice.
			name:     "holiday on weekend",
			month:    7,
			year:     2025,
			holidays: []models.Holiday{holidayOn(2025, time.July, 5, true)},
			expected: 23,
		},
		{
			name:     "inactive holiday ignored",
			month:    7,
			year:     2025,
			holidays: []models.Holiday{holidayOn(2025, time.July, 4, false)},
			expected: 23,
		},
		{
			name:     "holiday outside month ignored",
			month:    7,
			year:     2025,
			holidays: []models.Holiday{holidayOn(2025, time.August, 15, true)},
			expected: 23,
		},
		{
			// February 2025: 28 days, 8 weekend days.
			name:     "short month",
			month:    2,
			year:     2025,
			expected: 20,
		},
		{
			name:  "multiple holidays same month",
			month: 7,
			year:  2025,
			holidays: []models.Holiday{
				holidayOn(2025, time.July, 4, true),
				holidayOn(2025, time.July, 14, true),
			},
			expected: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WorkingDays(tt.month, tt.year, tt.holidays))
		})
	}
}

func TestWorkingDaysNeverNegative(t *testing.T) {
	// Even a calendar drowning in holidays bottoms out at zero.
	var holidays []models.Holiday
	for day := 1; day <= 31; day++ {
		holidays = append(holidays, holidayOn(2025, time.July, day, true))
	}

	assert.Equal(t, 0, WorkingDays(7, 2025, holidays))
}
