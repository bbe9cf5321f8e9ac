package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapp/internal/models"
	"blogapp/internal/store"
)

// Seed wipes the users, blogs and tags collections and loads the sample
// data set. Run with `go run . seed`.
func Seed(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"users", "blogs", "tags"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	log.Println("Seed: cleared existing data")

	s := store.NewMongo(db)

	users := []models.User{
		{
			Name:         "John Doe",
			EmailAddress: "john@example.com",
			Author:       &models.AuthorProfile{Bio: "Tech enthusiast and blogger"},
		},
		{
			Name:         "Jane Smith",
			EmailAddress: "jane@example.com",
			Author:       &models.AuthorProfile{Bio: "Professional writer and editor"},
		},
		{
			Name:         "Bob Wilson",
			EmailAddress: "bob@example.com",
			Author:       &models.AuthorProfile{Bio: "Travel blogger and photographer"},
		},
	}

	created := make([]models.User, 0, len(users))
	for _, user := range users {
		saved, err := s.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		created = append(created, saved)
	}
	log.Println("Seed: created sample users")

	now := time.Now()
	blogs := []models.Blog{
		{
			Name:   "Tech Trends 2024",
			URL:    "https://blog.example.com/tech-trends",
			Author: created[0].ID,
			BlogEntry: []models.Entry{{
				Article:     "Latest trends in technology...",
				PublishDate: now,
				Comment: []models.Comment{{
					Comment:     "Great insights!",
					CommentDate: now,
					CommentBy:   objectIDPtr(created[1].ID),
				}},
			}},
			Tags: models.StringList{"technology", "trends"},
		},
		{
			Name:   "Travel Adventures",
			URL:    "https://blog.example.com/travel",
			Author: created[2].ID,
			BlogEntry: []models.Entry{{
				Article:     "My journey through Europe...",
				PublishDate: now,
				Comment: []models.Comment{{
					Comment:     "Awesome travel tips!",
					CommentDate: now,
					CommentBy:   objectIDPtr(created[0].ID),
				}},
			}},
			Tags: models.StringList{"travel", "adventure"},
		},
	}

	for _, blog := range blogs {
		if _, err := s.CreateBlog(ctx, blog); err != nil {
			return err
		}
	}
	log.Println("Seed: created sample blogs")

	return nil
}

func objectIDPtr(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}
