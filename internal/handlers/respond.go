package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sjlutterbie/blog-api/internal/models"
	"github.com/sjlutterbie/blog-api/pkg/logger"
)

// respondError maps a data-layer error to a response. Store failures are
// logged with detail but answered with a fixed generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, models.ErrAuthorNotFound), errors.Is(err, models.ErrUserNameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// respondBadRequest answers a validation failure before any store call
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
