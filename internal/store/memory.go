package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapp/internal/models"
)

// MemoryStore is an in-memory Store used by tests. It mirrors the mongo
// implementation's semantics: generated object ids, unique emailAddress,
// idempotent delete and the write-time defaults.
type MemoryStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
	blogs map[primitive.ObjectID]models.Blog
	tags  map[string]models.Tag

	userOrder []primitive.ObjectID
	blogOrder []primitive.ObjectID
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		users: map[primitive.ObjectID]models.User{},
		blogs: map[primitive.ObjectID]models.Blog{},
		tags:  map[string]models.Tag{},
	}
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validateDoc(user); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.EmailAddress == user.EmailAddress {
			return models.User{}, &ValidationError{Message: "emailAddress already exists"}
		}
	}

	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user, nil
}

func (s *MemoryStore) UsersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := map[primitive.ObjectID]models.User{}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			byID[id] = user
		}
	}
	return byID, nil
}

func (s *MemoryStore) ListBlogs(ctx context.Context, filter BlogFilter) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blogs := []models.Blog{}
	for _, id := range s.blogOrder {
		blog, ok := s.blogs[id]
		if !ok {
			continue
		}
		if filter.Author != nil && blog.Author != *filter.Author {
			continue
		}
		if filter.Tag != "" && !containsTag(blog.Tags, filter.Tag) {
			continue
		}
		blogs = append(blogs, copyBlog(blog))
	}
	return blogs, nil
}

func (s *MemoryStore) GetBlog(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog, ok := s.blogs[id]
	if !ok {
		return models.Blog{}, ErrNotFound
	}
	return copyBlog(blog), nil
}

func (s *MemoryStore) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if err := validateDoc(blog); err != nil {
		return models.Blog{}, err
	}
	normalizeBlog(&blog, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	blog.ID = primitive.NewObjectID()
	s.blogs[blog.ID] = copyBlog(blog)
	s.blogOrder = append(s.blogOrder, blog.ID)
	s.recordTags(blog.Tags)
	return blog, nil
}

func (s *MemoryStore) ReplaceBlog(ctx context.Context, id primitive.ObjectID, blog models.Blog) (models.Blog, error) {
	if err := validateDoc(blog); err != nil {
		return models.Blog{}, err
	}
	normalizeBlog(&blog, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return models.Blog{}, ErrNotFound
	}
	blog.ID = id
	s.blogs[id] = copyBlog(blog)
	s.recordTags(blog.Tags)
	return blog, nil
}

func (s *MemoryStore) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blogs, id)
	return nil
}

func (s *MemoryStore) AppendComment(ctx context.Context, blogID primitive.ObjectID, comment models.Comment) (models.Blog, error) {
	if err := validateDoc(comment); err != nil {
		return models.Blog{}, err
	}
	normalizeComment(&comment, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	blog, ok := s.blogs[blogID]
	if !ok {
		return models.Blog{}, ErrNotFound
	}
	if len(blog.BlogEntry) == 0 {
		return models.Blog{}, ErrNoEntries
	}

	updated := copyBlog(blog)
	updated.BlogEntry[0].Comment = append(updated.BlogEntry[0].Comment, comment)
	s.blogs[blogID] = copyBlog(updated)
	return updated, nil
}

func (s *MemoryStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]models.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Value < tags[j].Value })
	return tags, nil
}

func (s *MemoryStore) recordTags(values []string) {
	for _, value := range values {
		if _, ok := s.tags[value]; ok {
			continue
		}
		s.tags[value] = models.Tag{ID: primitive.NewObjectID(), Value: value}
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// copyBlog deep-copies the embedded slices so callers cannot mutate stored
// state through the returned document.
func copyBlog(blog models.Blog) models.Blog {
	out := blog
	out.BlogEntry = make([]models.Entry, len(blog.BlogEntry))
	for i, entry := range blog.BlogEntry {
		copied := entry
		copied.Comment = append([]models.Comment(nil), entry.Comment...)
		if copied.Comment == nil {
			copied.Comment = []models.Comment{}
		}
		out.BlogEntry[i] = copied
	}
	out.Tags = append(models.StringList(nil), blog.Tags...)
	if out.Tags == nil {
		out.Tags = models.StringList{}
	}
	return out
}
