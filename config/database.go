package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client            *mongo.Client
	InvoiceCollection *mongo.Collection
	DraftCollection   *mongo.Collection
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
)

func ConnectDatabase() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "invoices"
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	InvoiceCollection = client.Database(dbName).Collection("invoices")
	DraftCollection = client.Database(dbName).Collection("drafts")
	UserCollection = client.Database(dbName).Collection("users")
	ProductCollection = client.Database(dbName).Collection("products")
	log.Println("Connected to MongoDB")
}

// EnsureIndexes creates the unique indexes the services rely on. The index
// on tableNumber is the final arbiter of the one-draft-per-table invariant:
// a save that races past the application-level pre-check still fails here
// with a duplicate key error.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := InvoiceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "invoiceId", Value: 1}}, Options: unique,
	})
	if err != nil {
		log.Fatalf("invoice indexes: %v", err)
	}

	_, err = DraftCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "draftId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tableNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		log.Fatalf("draft indexes: %v", err)
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("user indexes: %v", err)
	}

	_, err = ProductCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("product indexes: %v", err)
	}
}
