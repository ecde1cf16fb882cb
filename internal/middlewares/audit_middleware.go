package middlewares

import (
	"net/http"

	"pricepoint-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type LogServicePort interface {
	Log(log logs.SystemLog, metadata interface{}) error
}

// RequestAudit records failed requests in the audit log so storage-level
// errors stay visible after the generic message reaches the client.
func RequestAudit(logService LogServicePort) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusInternalServerError {
			return
		}

		entry := logs.SystemLog{
			Level:   "error",
			Service: "http",
			Action:  c.Request.Method + " " + c.FullPath(),
			Message: "request failed",
		}

		// Audit failures must not affect the response
		_ = logService.Log(entry, map[string]interface{}{
			"status": status,
			"path":   c.Request.URL.Path,
		})
	}
}
