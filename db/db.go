package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"homey/store"
)

// Init establishes the MongoDB connection and returns the client plus
// the per-collection gateways. Missing or bad credentials are fatal:
// the process must not come up without its database.
func Init() (*mongo.Client, *store.Store) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to reach database: ", err)
	}

	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "homeyDB"
	}

	log.Println("✅ Database connection established successfully!")
	return client, store.NewMongoStore(client.Database(name))
}
