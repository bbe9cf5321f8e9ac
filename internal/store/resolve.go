package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
)

// ResolveBlogs replaces author and comment-author references with full user
// documents, batching the user lookup across all blogs.
func ResolveBlogs(ctx context.Context, s Store, blogs []models.Blog) ([]models.ResolvedBlog, error) {
	seen := map[primitive.ObjectID]struct{}{}
	ids := make([]primitive.ObjectID, 0, len(blogs))
	for _, blog := range blogs {
		for _, id := range blog.ReferencedUserIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users, err := s.UsersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.ResolvedBlog, 0, len(blogs))
	for _, blog := range blogs {
		resolved = append(resolved, blog.Resolve(users))
	}
	return resolved, nil
}

// ResolveBlog is the single-document variant of ResolveBlogs.
func ResolveBlog(ctx context.Context, s Store, blog models.Blog) (models.ResolvedBlog, error) {
	resolved, err := ResolveBlogs(ctx, s, []models.Blog{blog})
	if err != nil {
		return models.ResolvedBlog{}, err
	}
	return resolved[0], nil
}
