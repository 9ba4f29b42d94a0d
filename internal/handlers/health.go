package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thales-ken/CRM/internal/database"
)

// Health reports service and store liveness.
func Health(c *gin.Context) {
	db := "down"
	if database.HealthCheck() {
		db = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"db":        db,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
