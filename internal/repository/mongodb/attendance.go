package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"payrollms/internal/domain/models"
)

// MongoAttendanceRepository implements AttendanceRepository over MongoDB.
type MongoAttendanceRepository struct {
	coll *mongo.Collection
}

// NewAttendanceRepository creates an attendance repository bound to the client.
func NewAttendanceRepository(c *Client) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{coll: c.db.Collection(attendanceCollection)}
}

// Create inserts a new attendance record. A second record for the same
// (employee_id, date) is rejected by the unique index.
func (r *MongoAttendanceRepository) Create(ctx context.Context, att models.Attendance) error {
	att.Date = truncateToDay(att.Date)
	if _, err := r.coll.InsertOne(ctx, att); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("attendance for %s on %s: %w", att.EmployeeID, att.Date.Format("2006-01-02"), ErrDuplicateKey)
		}
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
	return nil
}

// Update replaces the record identified by (employee_id, date).
func (r *MongoAttendanceRepository) Update(ctx context.Context, att models.Attendance) error {
	att.Date = truncateToDay(att.Date)
	filter := bson.M{"employee_id": att.EmployeeID, "date": att.Date}
	_, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": att})
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

// GetByEmployeeAndDate fetches one employee-day record, (nil, nil) on miss.
func (r *MongoAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.Attendance, error) {
	filter := bson.M{"employee_id": employeeID, "date": truncateToDay(date)}

	var att models.Attendance
	err := r.coll.FindOne(ctx, filter).Decode(&att)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &att, nil
}

// ListByEmployeeMonth returns every record whose date falls inside the
// month, using the half-open range [first of month, first of next month).
func (r *MongoAttendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]models.Attendance, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": start, "$lt": end},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}

// truncateToDay normalizes a timestamp to UTC midnight so that the unique
// (employee_id, date) index compares calendar days, not instants.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
