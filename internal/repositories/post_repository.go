package repositories

import (
	"context"
	"errors"

	"github.com/sjlutterbie/blog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("blogposts"),
	}
}

// List retrieves up to limit posts in insertion order
func (r *PostRepository) List(ctx context.Context, limit int64) ([]*models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetByID retrieves a post by id
func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post := &models.Post{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

// Create inserts a new post and fills in the store-assigned id
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a field patch to a post
func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": patch})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a post. Deleting an absent id is not an error.
func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByAuthor removes every post referencing the given author id
func (r *PostRepository) DeleteByAuthor(ctx context.Context, authorID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"author": authorID})
	return err
}
