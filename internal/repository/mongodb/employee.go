package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"payrollms/internal/domain/models"
)

// MongoEmployeeRepository implements EmployeeRepository over MongoDB.
type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

// NewEmployeeRepository creates an employee repository bound to the client.
func NewEmployeeRepository(c *Client) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: c.db.Collection(employeesCollection)}
}

// GetByID fetches one employee by its business identifier. A missing
// employee yields (nil, nil).
func (r *MongoEmployeeRepository) GetByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var emp models.Employee
	err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return &emp, nil
}

// ListActive returns all employees currently on the payroll.
func (r *MongoEmployeeRepository) ListActive(ctx context.Context) ([]models.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.EmployeeActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}
