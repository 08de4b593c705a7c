package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfiguredChecker reports whether the backing database handle exists.
type ConfiguredChecker interface {
	Configured() bool
}

// RequireDatabase rejects requests with 503 while no database is configured.
func RequireDatabase(db ConfiguredChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil || !db.Configured() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
			return
		}
		c.Next()
	}
}
