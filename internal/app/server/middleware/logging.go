package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs one structured entry per handled request.
func LoggingMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.WithFields(logrus.Fields{
			"method":       c.Request.Method,
			"uri":          c.Request.RequestURI,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start),
			"responseSize": c.Writer.Size(),
		}).Info("HTTP request handled")
	}
}
