package models

import "time"

// Holiday is a registered non-working date from the master-data side.
// Only active holidays reduce the month's working-day count.
type Holiday struct {
	HolidayID string    `bson:"holiday_id" json:"holiday_id"`
	Name      string    `bson:"holiday_name" json:"holiday_name"`
	Date      time.Time `bson:"holiday_date" json:"holiday_date"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
}
