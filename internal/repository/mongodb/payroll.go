package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"payrollms/internal/domain/models"
)

// MongoPayrollRepository implements PayrollRepository over MongoDB.
type MongoPayrollRepository struct {
	coll *mongo.Collection
}

// NewPayrollRepository creates a payroll repository bound to the client.
func NewPayrollRepository(c *Client) *MongoPayrollRepository {
	return &MongoPayrollRepository{coll: c.db.Collection(payrollsCollection)}
}

// Create inserts a finalized payroll document. A concurrent insert for the
// same (employee_id, month, year) loses against the unique index and
// surfaces as ErrDuplicateKey.
func (r *MongoPayrollRepository) Create(ctx context.Context, payroll models.Payroll) error {
	if _, err := r.coll.InsertOne(ctx, payroll); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("payroll %s %d/%d: %w", payroll.EmployeeID, payroll.Month, payroll.Year, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to insert payroll: %w", err)
	}
	return nil
}

// GetByEmployeePeriod fetches the payroll for one employee and month,
// (nil, nil) on miss.
func (r *MongoPayrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*models.Payroll, error) {
	filter := bson.M{"employee_id": employeeID, "month": month, "year": year}

	var payroll models.Payroll
	err := r.coll.FindOne(ctx, filter).Decode(&payroll)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}
	return &payroll, nil
}

// ListByPeriod returns every payroll generated for the given month.
func (r *MongoPayrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]models.Payroll, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"month": month, "year": year},
		options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls for %d/%d: %w", month, year, err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.Payroll
	if err := cursor.All(ctx, &payrolls); err != nil {
		return nil, fmt.Errorf("failed to decode payrolls: %w", err)
	}
	return payrolls, nil
}

// ListByEmployee returns an employee's payroll history, newest first.
func (r *MongoPayrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.Payroll, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"employee_id": employeeID},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls for %s: %w", employeeID, err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.Payroll
	if err := cursor.All(ctx, &payrolls); err != nil {
		return nil, fmt.Errorf("failed to decode payrolls: %w", err)
	}
	return payrolls, nil
}

// Delete removes one payroll document; the boolean reports whether a
// document actually existed.
func (r *MongoPayrollRepository) Delete(ctx context.Context, employeeID string, month, year int) (bool, error) {
	filter := bson.M{"employee_id": employeeID, "month": month, "year": year}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete payroll: %w", err)
	}
	return result.DeletedCount > 0, nil
}
