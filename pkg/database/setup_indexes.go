package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the query layer relies on: the unique
// credential email, and the course+status+time compound used by the
// lecture listing.
func SetupIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := GetCollection("credentials").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error create credential email index: %v", err)
	}

	_, err = GetCollection("lectures").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "course", Value: 1},
			{Key: "status", Value: 1},
			{Key: "time", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("error create lecture listing index: %v", err)
	}

	return nil
}
