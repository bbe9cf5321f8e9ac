package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
)

// ErrNotFound reports that no document matched the given id.
var ErrNotFound = errors.New("not found")

// ErrNoEntries reports a comment append against a blog with an empty
// blogEntry array. Comments always attach to the first entry, so there is
// nothing to append to.
var ErrNoEntries = errors.New("blog has no entries")

// ValidationError reports a schema-level failure: a required field missing
// or the email uniqueness constraint violated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BlogFilter restricts ListBlogs. Zero value means no restriction.
type BlogFilter struct {
	Author *primitive.ObjectID
	Tag    string
}

// Store is the persistence boundary. Handlers depend on this interface so
// tests can substitute the in-memory implementation for the mongo one.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UsersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)

	ListBlogs(ctx context.Context, filter BlogFilter) ([]models.Blog, error)
	GetBlog(ctx context.Context, id primitive.ObjectID) (models.Blog, error)
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	ReplaceBlog(ctx context.Context, id primitive.ObjectID, blog models.Blog) (models.Blog, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error
	AppendComment(ctx context.Context, blogID primitive.ObjectID, comment models.Comment) (models.Blog, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
}
