package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	ProfilesCollection      *mongo.Collection
	ArtistsCollection       *mongo.Collection
	LabelsCollection        *mongo.Collection
	FestivalsCollection     *mongo.Collection
	BookingsCollection      *mongo.Collection
	FavoritesCollection     *mongo.Collection
	NotificationsCollection *mongo.Collection
	Client                  *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("cadenzadb")
	UserCollection = database.Collection("users")
	ProfilesCollection = database.Collection("profiles")
	ArtistsCollection = database.Collection("artists")
	LabelsCollection = database.Collection("labels")
	FestivalsCollection = database.Collection("festivals")
	BookingsCollection = database.Collection("bookings")
	FavoritesCollection = database.Collection("favorites")
	NotificationsCollection = database.Collection("notifications")
}
