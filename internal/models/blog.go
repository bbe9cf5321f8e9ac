package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in an Entry. Comments have no identity of their own;
// they live and die with the parent blog document.
type Comment struct {
	Comment     string              `bson:"comment" json:"comment" validate:"required"`
	CommentDate time.Time           `bson:"commentDate" json:"commentDate"`
	CommentBy   *primitive.ObjectID `bson:"commentBy,omitempty" json:"commentBy,omitempty"`
}

// Entry is a single article embedded in a Blog.
type Entry struct {
	Article     string    `bson:"article" json:"article" validate:"required"`
	PublishDate time.Time `bson:"publishDate" json:"publishDate"`
	Comment     []Comment `bson:"comment" json:"comment" validate:"dive"`
}

// Blog is the top-level blog document. Author is stored as a bare user id;
// API responses resolve it into the full user (see ResolvedBlog).
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	URL       string             `bson:"URL" json:"URL" validate:"required"`
	Author    primitive.ObjectID `bson:"author" json:"author" validate:"required"`
	BlogEntry []Entry            `bson:"blogEntry" json:"blogEntry" validate:"dive"`
	Tags      StringList         `bson:"tags" json:"tags"`
}

// ReferencedUserIDs collects the author id plus every comment author id in
// the document, for batch resolution.
func (b Blog) ReferencedUserIDs() []primitive.ObjectID {
	seen := map[primitive.ObjectID]struct{}{}
	ids := make([]primitive.ObjectID, 0, 1)

	add := func(id primitive.ObjectID) {
		if id.IsZero() {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	add(b.Author)
	for _, entry := range b.BlogEntry {
		for _, comment := range entry.Comment {
			if comment.CommentBy != nil {
				add(*comment.CommentBy)
			}
		}
	}
	return ids
}
