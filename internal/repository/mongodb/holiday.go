package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"payrollms/internal/domain/models"
)

// MongoHolidayRepository implements HolidayRepository over MongoDB.
type MongoHolidayRepository struct {
	coll *mongo.Collection
}

// NewHolidayRepository creates a holiday repository bound to the client.
func NewHolidayRepository(c *Client) *MongoHolidayRepository {
	return &MongoHolidayRepository{coll: c.db.Collection(holidaysCollection)}
}

// ListActive returns all active registered holidays sorted by date.
func (r *MongoHolidayRepository) ListActive(ctx context.Context) ([]models.Holiday, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "holiday_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	return holidays, nil
}
