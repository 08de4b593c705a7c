package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/lingeriestore/config"
	"github.com/princinho/lingeriestore/models"
)

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Lingerie Store Backend Running"})
	}
}

func Schema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": models.Collections()})
	}
}

// TestDatabase reports database reachability and which settings are present.
// It always answers 200.
func TestDatabase(probe DatabaseProbe, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := DiagnosticsResponse{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		if probe != nil && probe.Configured() {
			st := probe.Status(c.Request.Context())
			resp.Database = "✅ Available"
			resp.ConnectionStatus = "Connected"
			if st.Err != nil {
				resp.Database = "⚠️  Connected but Error: " + truncate(st.Err.Error(), 50)
			} else {
				resp.Database = "✅ Connected & Working"
				resp.Collections = st.Collections
			}
		}

		resp.DatabaseURL = presence(cfg.DatabaseURL)
		resp.DatabaseName = presence(cfg.DatabaseName)

		c.JSON(http.StatusOK, resp)
	}
}

func presence(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
