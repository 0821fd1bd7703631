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

type AuthorRepository struct {
	collection *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{
		collection: db.Collection("authors"),
	}
}

// List retrieves up to limit authors in insertion order
func (r *AuthorRepository) List(ctx context.Context, limit int64) ([]*models.Author, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}

	var authors []*models.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, err
	}

	return authors, nil
}

// GetByID retrieves an author by id
func (r *AuthorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	author := &models.Author{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(author)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return author, nil
}

// GetByUserName retrieves an author by username
func (r *AuthorRepository) GetByUserName(ctx context.Context, userName string) (*models.Author, error) {
	author := &models.Author{}
	err := r.collection.FindOne(ctx, bson.M{"userName": userName}).Decode(author)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return author, nil
}

// Create inserts a new author and fills in the store-assigned id
func (r *AuthorRepository) Create(ctx context.Context, author *models.Author) error {
	result, err := r.collection.InsertOne(ctx, author)
	if err != nil {
		return err
	}

	author.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a field patch to an author
func (r *AuthorRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
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

// Delete removes an author. Deleting an absent id is not an error.
func (r *AuthorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
