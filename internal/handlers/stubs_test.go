package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sjlutterbie/blog-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newPostRouter(service PostService) *gin.Engine {
	router := gin.New()
	handler := NewPostHandler(service)
	router.GET("/posts", handler.List)
	router.GET("/posts/:id", handler.Get)
	router.POST("/posts", handler.Create)
	router.PUT("/posts/:id", handler.Update)
	router.DELETE("/posts/:id", handler.Delete)
	router.NoRoute(NewNotFoundHandler().NotFound)
	return router
}

func newAuthorRouter(service AuthorService) *gin.Engine {
	router := gin.New()
	handler := NewAuthorHandler(service)
	router.GET("/authors", handler.List)
	router.GET("/authors/:id", handler.Get)
	router.GET("/authors/userName/:userName", handler.GetByUserName)
	router.POST("/authors", handler.Create)
	router.PUT("/authors/:id", handler.Update)
	router.DELETE("/authors/:id", handler.Delete)
	return router
}

// stubPostService returns canned values and records which methods ran
type stubPostService struct {
	listViews []*models.PostListView
	view      *models.PostView
	listView  *models.PostListView
	err       error

	createCalled bool
	updateCalled bool
	deleteCalled bool
}

func (s *stubPostService) ListPosts(ctx context.Context) ([]*models.PostListView, error) {
	return s.listViews, s.err
}

func (s *stubPostService) GetPost(ctx context.Context, id string) (*models.PostView, error) {
	return s.view, s.err
}

func (s *stubPostService) CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.PostView, error) {
	s.createCalled = true
	return s.view, s.err
}

func (s *stubPostService) UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.PostListView, error) {
	s.updateCalled = true
	return s.listView, s.err
}

func (s *stubPostService) DeletePost(ctx context.Context, id string) error {
	s.deleteCalled = true
	return s.err
}

// stubAuthorService mirrors stubPostService for authors
type stubAuthorService struct {
	views []*models.AuthorView
	view  *models.AuthorView
	err   error

	createCalled bool
	updateCalled bool
	deleteCalled bool
}

func (s *stubAuthorService) ListAuthors(ctx context.Context) ([]*models.AuthorView, error) {
	return s.views, s.err
}

func (s *stubAuthorService) GetAuthor(ctx context.Context, id string) (*models.AuthorView, error) {
	return s.view, s.err
}

func (s *stubAuthorService) GetAuthorByUserName(ctx context.Context, userName string) (*models.AuthorView, error) {
	return s.view, s.err
}

func (s *stubAuthorService) CreateAuthor(ctx context.Context, req *models.CreateAuthorRequest) (*models.AuthorView, error) {
	s.createCalled = true
	return s.view, s.err
}

func (s *stubAuthorService) UpdateAuthor(ctx context.Context, id string, req *models.UpdateAuthorRequest) (*models.AuthorView, error) {
	s.updateCalled = true
	return s.view, s.err
}

func (s *stubAuthorService) DeleteAuthor(ctx context.Context, id string) error {
	s.deleteCalled = true
	return s.err
}
