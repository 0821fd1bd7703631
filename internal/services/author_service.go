package services

import (
	"context"
	"errors"

	"github.com/sjlutterbie/blog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listLimit caps every list response
const listLimit = 10

// AuthorStore is the slice of the author repository the services depend on
type AuthorStore interface {
	List(ctx context.Context, limit int64) ([]*models.Author, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error)
	GetByUserName(ctx context.Context, userName string) (*models.Author, error)
	Create(ctx context.Context, author *models.Author) error
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AuthorService struct {
	authors AuthorStore
	posts   PostStore
}

func NewAuthorService(authors AuthorStore, posts PostStore) *AuthorService {
	return &AuthorService{
		authors: authors,
		posts:   posts,
	}
}

// ListAuthors retrieves up to 10 authors, serialized
func (s *AuthorService) ListAuthors(ctx context.Context) ([]*models.AuthorView, error) {
	authors, err := s.authors.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}

	views := make([]*models.AuthorView, 0, len(authors))
	for _, author := range authors {
		views = append(views, author.Serialize())
	}

	return views, nil
}

// GetAuthor retrieves one author by id
func (s *AuthorService) GetAuthor(ctx context.Context, id string) (*models.AuthorView, error) {
	authorID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return author.Serialize(), nil
}

// GetAuthorByUserName retrieves one author by username
func (s *AuthorService) GetAuthorByUserName(ctx context.Context, userName string) (*models.AuthorView, error) {
	author, err := s.authors.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	return author.Serialize(), nil
}

// CreateAuthor creates an author after checking username availability. The
// check and the insert are two separate store calls, so a concurrent create
// of the same username can still slip through.
func (s *AuthorService) CreateAuthor(ctx context.Context, req *models.CreateAuthorRequest) (*models.AuthorView, error) {
	if err := s.checkUserNameAvailable(ctx, req.UserName, primitive.NilObjectID); err != nil {
		return nil, err
	}

	author := &models.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	}

	if err := s.authors.Create(ctx, author); err != nil {
		return nil, err
	}

	return author.Serialize(), nil
}

// UpdateAuthor applies an allow-listed patch to an author
func (s *AuthorService) UpdateAuthor(ctx context.Context, id string, req *models.UpdateAuthorRequest) (*models.AuthorView, error) {
	authorID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if req.UserName != nil {
		if err := s.checkUserNameAvailable(ctx, *req.UserName, authorID); err != nil {
			return nil, err
		}
	}

	if err := s.authors.Update(ctx, authorID, authorPatch(req)); err != nil {
		return nil, err
	}

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return author.Serialize(), nil
}

// DeleteAuthor removes the author's posts, then the author. The two deletes
// are independent store calls; a failure in between leaves orphaned state.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id string) error {
	authorID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing can exist under a malformed id
		return nil
	}

	if err := s.posts.DeleteByAuthor(ctx, authorID); err != nil {
		return err
	}

	return s.authors.Delete(ctx, authorID)
}

// checkUserNameAvailable fails when another author already holds the
// username. Pass the updating author's own id so renaming to the current
// value is allowed.
func (s *AuthorService) checkUserNameAvailable(ctx context.Context, userName string, self primitive.ObjectID) error {
	existing, err := s.authors.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != self {
		return models.ErrUserNameTaken
	}

	return nil
}

// authorPatch builds the update document from the allow-listed fields only
func authorPatch(req *models.UpdateAuthorRequest) bson.M {
	patch := bson.M{}
	if req.FirstName != nil {
		patch["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		patch["lastName"] = *req.LastName
	}
	if req.UserName != nil {
		patch["userName"] = *req.UserName
	}
	return patch
}
