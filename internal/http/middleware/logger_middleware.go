package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		requestID := ""
		if id, exists := c.Get("request_id"); exists {
			requestID = id.(string)
		}

		log.Info("REST Processed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("clientIP", c.ClientIP()),
			zap.Int("statusCode", c.Writer.Status()),
			zap.String("latency", time.Since(start).String()),
			zap.Int("dataLength", c.Writer.Size()),
			zap.String("X-TRACE-ID", requestID))
	}
}
