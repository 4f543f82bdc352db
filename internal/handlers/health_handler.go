package handlers

import (
	"net/http"

	"exam-service/internal/db"

	"github.com/gin-gonic/gin"
)

// Health reports liveness: 200 when the database connection answers a
// ping, 503 otherwise.
func Health(c *gin.Context) {
	if err := db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"db":     err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
