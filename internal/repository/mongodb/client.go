package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeesCollection  = "employees"
	attendanceCollection = "attendance"
	holidaysCollection   = "holidays"
	payrollsCollection   = "payrolls"
)

// Client owns the MongoDB connection shared by the repositories. The
// application bootstrap connects once and disconnects on shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection, verifies it with a ping and
// ensures the unique indexes the service relies on.
func Connect(ctx context.Context, uri string, dbName string) (*Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	c := &Client{client: client, db: client.Database(dbName)}
	if err := c.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// ensureIndexes creates the unique indexes. The payroll index is the only
// concurrency safety net for duplicate generation: two racing inserts for
// the same (employee_id, month, year) resolve here, not in memory.
func (c *Client) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		employeesCollection: {
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: unique,
		},
		attendanceCollection: {
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: unique,
		},
		payrollsCollection: {
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "month", Value: 1}, {Key: "year", Value: 1}},
			Options: unique,
		},
		holidaysCollection: {
			Keys: bson.D{{Key: "holiday_date", Value: 1}},
		},
	}

	for coll, model := range indexes {
		if _, err := c.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}

	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
