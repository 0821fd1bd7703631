package services

import (
	"context"
	"errors"

	"github.com/sjlutterbie/blog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostStore is the slice of the post repository the services depend on
type PostStore interface {
	List(ctx context.Context, limit int64) ([]*models.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAuthor(ctx context.Context, authorID primitive.ObjectID) error
}

type PostService struct {
	posts   PostStore
	authors AuthorStore
}

func NewPostService(posts PostStore, authors AuthorStore) *PostService {
	return &PostService{
		posts:   posts,
		authors: authors,
	}
}

// ListPosts retrieves up to 10 posts in the list projection, each with its
// author resolved
func (s *PostService) ListPosts(ctx context.Context) ([]*models.PostListView, error) {
	posts, err := s.posts.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}

	views := make([]*models.PostListView, 0, len(posts))
	for _, post := range posts {
		author, err := s.resolveAuthor(ctx, post.Author)
		if err != nil {
			return nil, err
		}
		views = append(views, post.SerializeNoComments(author))
	}

	return views, nil
}

// GetPost retrieves one post in the full projection
func (s *PostService) GetPost(ctx context.Context, id string) (*models.PostView, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, post.Author)
	if err != nil {
		return nil, err
	}

	return post.Serialize(author), nil
}

// CreatePost creates a post after confirming the referenced author exists.
// The existence check and the insert are separate store calls, so the
// author can disappear in between; the check is advisory, not a guarantee.
func (s *PostService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.PostView, error) {
	authorID, err := primitive.ObjectIDFromHex(req.Author)
	if err != nil {
		return nil, models.ErrAuthorNotFound
	}

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrAuthorNotFound
		}
		return nil, err
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   authorID,
		Comments: req.Comments,
		Created:  req.Created,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post.Serialize(author), nil
}

// UpdatePost applies an allow-listed patch and returns the updated post in
// the list projection
func (s *PostService) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.PostListView, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if err := s.posts.Update(ctx, postID, postPatch(req)); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, post.Author)
	if err != nil {
		return nil, err
	}

	return post.SerializeNoComments(author), nil
}

// DeletePost removes a post. Absent or malformed ids succeed, matching
// DELETE's idempotent contract.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	return s.posts.Delete(ctx, postID)
}

// resolveAuthor is the explicit second step of the post/author join. A
// dangling reference resolves to nil rather than failing the read: the
// cascade delete is best-effort, so dangling posts are reachable.
func (s *PostService) resolveAuthor(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return author, nil
}

// postPatch builds the update document from the allow-listed fields only.
// The author reference is never part of a patch.
func postPatch(req *models.UpdatePostRequest) bson.M {
	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	return patch
}
