package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogapp/internal/models"
)

// MongoStore implements Store over a mongo database with users, blogs and
// tags collections.
type MongoStore struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) users() *mongo.Collection { return s.db.Collection("users") }
func (s *MongoStore) blogs() *mongo.Collection { return s.db.Collection("blogs") }
func (s *MongoStore) tags() *mongo.Collection  { return s.db.Collection("tags") }

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validateDoc(user); err != nil {
		return models.User{}, err
	}

	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, &ValidationError{Message: "emailAddress already exists"}
		}
		return models.User{}, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *MongoStore) UsersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	byID := map[primitive.ObjectID]models.User{}
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := s.users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func (s *MongoStore) ListBlogs(ctx context.Context, filter BlogFilter) ([]models.Blog, error) {
	query := bson.M{}
	if filter.Author != nil {
		query["author"] = *filter.Author
	}
	if filter.Tag != "" {
		// Exact, case-sensitive membership test on the tags array.
		query["tags"] = filter.Tag
	}

	cursor, err := s.blogs().Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *MongoStore) GetBlog(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var blog models.Blog
	err := s.blogs().FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

func (s *MongoStore) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if err := validateDoc(blog); err != nil {
		return models.Blog{}, err
	}
	normalizeBlog(&blog, time.Now())

	res, err := s.blogs().InsertOne(ctx, blog)
	if err != nil {
		return models.Blog{}, err
	}
	blog.ID = res.InsertedID.(primitive.ObjectID)

	if err := s.recordTags(ctx, blog.Tags); err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

func (s *MongoStore) ReplaceBlog(ctx context.Context, id primitive.ObjectID, blog models.Blog) (models.Blog, error) {
	if err := validateDoc(blog); err != nil {
		return models.Blog{}, err
	}
	normalizeBlog(&blog, time.Now())
	blog.ID = id

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Blog
	err := s.blogs().FindOneAndReplace(ctx, bson.M{"_id": id}, blog, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}

	if err := s.recordTags(ctx, updated.Tags); err != nil {
		return models.Blog{}, err
	}
	return updated, nil
}

// DeleteBlog is idempotent: deleting an id that never existed still
// succeeds, the driver's delete does not distinguish the two cases.
func (s *MongoStore) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.blogs().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// AppendComment pushes onto blogEntry[0].comment in a single atomic update,
// so two concurrent appends cannot drop each other.
func (s *MongoStore) AppendComment(ctx context.Context, blogID primitive.ObjectID, comment models.Comment) (models.Blog, error) {
	if err := validateDoc(comment); err != nil {
		return models.Blog{}, err
	}
	normalizeComment(&comment, time.Now())

	filter := bson.M{
		"_id":         blogID,
		"blogEntry.0": bson.M{"$exists": true},
	}
	update := bson.M{
		"$push": bson.M{"blogEntry.0.comment": comment},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Blog
	err := s.blogs().FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the blog is gone or it has no entries to attach to.
		if countErr := s.blogs().FindOne(ctx, bson.M{"_id": blogID}).Err(); countErr != nil {
			if errors.Is(countErr, mongo.ErrNoDocuments) {
				return models.Blog{}, ErrNotFound
			}
			return models.Blog{}, countErr
		}
		return models.Blog{}, ErrNoEntries
	}
	if err != nil {
		return models.Blog{}, err
	}
	return updated, nil
}

func (s *MongoStore) ListTags(ctx context.Context) ([]models.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "value", Value: 1}})
	cursor, err := s.tags().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// recordTags upserts every tag value into the tags collection so the
// suggestion list keeps up with what blogs actually use.
func (s *MongoStore) recordTags(ctx context.Context, values []string) error {
	for _, value := range values {
		_, err := s.tags().UpdateOne(
			ctx,
			bson.M{"value": value},
			bson.M{"$setOnInsert": bson.M{"value": value}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
