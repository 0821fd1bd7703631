package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjlutterbie/blog-api/internal/models"
)

// AuthorService is what the author handler needs from the service layer
type AuthorService interface {
	ListAuthors(ctx context.Context) ([]*models.AuthorView, error)
	GetAuthor(ctx context.Context, id string) (*models.AuthorView, error)
	GetAuthorByUserName(ctx context.Context, userName string) (*models.AuthorView, error)
	CreateAuthor(ctx context.Context, req *models.CreateAuthorRequest) (*models.AuthorView, error)
	UpdateAuthor(ctx context.Context, id string, req *models.UpdateAuthorRequest) (*models.AuthorView, error)
	DeleteAuthor(ctx context.Context, id string) error
}

type AuthorHandler struct {
	authorService AuthorService
}

func NewAuthorHandler(authorService AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// List returns up to 10 authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// Get returns one author by id
func (h *AuthorHandler) Get(c *gin.Context) {
	author, err := h.authorService.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

// GetByUserName returns one author by username
func (h *AuthorHandler) GetByUserName(c *gin.Context) {
	author, err := h.authorService.GetAuthorByUserName(c.Request.Context(), c.Param("userName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

// Create validates the request body and creates an author
func (h *AuthorHandler) Create(c *gin.Context) {
	var req models.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	author, err := h.authorService.CreateAuthor(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author)
}

// Update applies an allow-listed patch to an author. The body id must
// match the path id.
func (h *AuthorHandler) Update(c *gin.Context) {
	var req models.UpdateAuthorRequest
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

	author, err := h.authorService.UpdateAuthor(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, author)
}

// Delete removes the author's posts, then the author
func (h *AuthorHandler) Delete(c *gin.Context) {
	if err := h.authorService.DeleteAuthor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
