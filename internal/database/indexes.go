package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "emailAddress", Value: 1}},
		Options: options.Index().
			SetName("emailAddress_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating emailAddress_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: emailAddress index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: emailAddress_unique index created")
	return nil
}

func EnsureBlogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("blogs").Indexes()

	authorIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("author_index"),
	}

	log.Println("EnsureBlogIndexes: creating author_index index")
	_, err := indexes.CreateOne(ctx, authorIndex)
	if err != nil {
		log.Println("EnsureBlogIndexes: author index error:", err)
		return err
	}
	log.Println("EnsureBlogIndexes: author_index index created")
	return nil
}

func EnsureTagIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("tags").Indexes()

	valueIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "value", Value: 1}},
		Options: options.Index().
			SetName("value_unique").
			SetUnique(true),
	}

	log.Println("EnsureTagIndexes: creating value_unique index")
	_, err := indexes.CreateOne(ctx, valueIndex)
	if err != nil {
		log.Println("EnsureTagIndexes: value index error:", err)
		return err
	}
	log.Println("EnsureTagIndexes: value_unique index created")
	return nil
}
