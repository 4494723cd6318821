package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gymhub/internal/metrics"
)

// RequestLogger logs every request, records metrics and recovers panics
// into a JSON 500.
func RequestLogger() gin.HandlerFunc {
	log := logrus.WithField("module", "http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		defer func() {
			latency := time.Since(start)

			if recovered := recover(); recovered != nil {
				log.WithFields(logrus.Fields{
					"method":    c.Request.Method,
					"path":      path,
					"client_ip": c.ClientIP(),
					"user_id":   c.GetInt64("user_id"),
					"panic":     fmt.Sprintf("%v", recovered),
					"stack":     string(debug.Stack()),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "internal server error",
					},
				})
			}

			status := c.Writer.Status()
			metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(status), latency.Seconds())

			fields := logrus.Fields{
				"method":    c.Request.Method,
				"path":      c.Request.URL.Path,
				"status":    status,
				"latency":   latency.String(),
				"client_ip": c.ClientIP(),
				"user_id":   c.GetInt64("user_id"),
				"role":      c.GetString("role"),
			}
			for _, err := range c.Errors {
				fields["error"] = err.Error()
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.WithFields(fields).Error("request failed")
			case status >= http.StatusBadRequest:
				log.WithFields(fields).Warn("request rejected")
			default:
				log.WithFields(fields).Debug("request served")
			}
		}()

		c.Next()
	}
}
