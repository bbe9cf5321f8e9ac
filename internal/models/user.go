package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorProfile is the optional free-form author info attached to a user.
type AuthorProfile struct {
	Bio string `bson:"bio,omitempty" json:"bio,omitempty"`
}

// User represents a blog platform user. EmailAddress is unique across the
// users collection (enforced by index, see internal/database).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	EmailAddress string             `bson:"emailAddress" json:"emailAddress" validate:"required"`
	Author       *AuthorProfile     `bson:"author,omitempty" json:"author,omitempty"`
}
