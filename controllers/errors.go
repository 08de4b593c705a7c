package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/database"
)

// respondError maps gateway errors onto HTTP statuses. Anything unrecognised
// is a storage fault and reported as 503.
func respondError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
	case errors.Is(err, database.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + resource + " id"})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
}
