package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjlutterbie/blog-api/internal/models"
)

// PostService is what the post handler needs from the service layer
type PostService interface {
	ListPosts(ctx context.Context) ([]*models.PostListView, error)
	GetPost(ctx context.Context, id string) (*models.PostView, error)
	CreatePost(ctx context.Context, req *models.CreatePostRequest) (*models.PostView, error)
	UpdatePost(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.PostListView, error)
	DeletePost(ctx context.Context, id string) error
}

type PostHandler struct {
	postService PostService
}

func NewPostHandler(postService PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// List returns up to 10 posts in the no-comments projection
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogposts": posts})
}

// Get returns one post in the full projection
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create validates the request body and creates a post
func (h *PostHandler) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update applies an allow-listed patch to a post. The body id must match
// the path id.
func (h *PostHandler) Update(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	id := c.Param("id")
	if req.ID != id {
		respondBadRequest(c, fmt.Sprintf("Request path id (%s) and request body id (%s) must match", id, req.ID))
		return
	}

	if err := req.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post, succeeding whether or not it existed
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
