package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lkuo/naf-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB Client
var MongoClient *mongo.Client

// InitMongoDB Init MongoDB connection
func InitMongoDB() {
	// Set connection options
	clientOptions := options.Client().ApplyURI(os.Getenv("MONGO_URI"))

	// Set a context to avoid long blocking
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		utils.Logger.Sugar().Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Check connection
	err = client.Ping(ctx, nil)
	if err != nil {
		utils.Logger.Sugar().Fatalf("Failed to connect to MongoDB: %v", err)
	}

	MongoClient = client
}

// GetCollection Get MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(os.Getenv("DB_NAME")).Collection(collectionName)
}

// CloseMongoDB Close MongoDB connection
func CloseMongoDB() {
	if err := MongoClient.Disconnect(context.TODO()); err != nil {
		utils.Logger.Sugar().Fatalf("Failed to disconnect from MongoDB: %v", err)
	}
	fmt.Println("Successfully disconnected from MongoDB")
}
