package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type repository struct {
	db *mongo.Database
}

// NewPingRepository sends commands to db, normally the "admin" database.
func NewPingRepository(db *mongo.Database) *repository {
	return &repository{db: db}
}

func (r *repository) Ping(ctx context.Context) error {
	err := r.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	if err != nil {
		return fmt.Errorf("ping %s: %w", r.db.Name(), err)
	}

	return nil
}
