package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a distinct tag value seen on any blog. The collection is kept in
// sync on blog writes and backs the tag suggestion list in the client.
type Tag struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Value string             `bson:"value" json:"value" validate:"required"`
}
