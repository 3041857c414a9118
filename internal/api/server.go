package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer builds the gin engine with all routes configured. When
// accessKey is set, trigger and subscriber endpoints require it in the
// X-API-Key header; status endpoints stay open.
func NewServer(handler *Handler, accessKey string, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "ptt-notifier",
			"endpoints": gin.H{
				"health":        "/health",
				"stats":         "/stats",
				"quota":         "/quota",
				"notifications": "/notifications",
				"trigger":       "/trigger (POST)",
				"digest":        "/trigger/hourly (POST)",
				"subscribers":   "/subscribers",
			},
			"auth": gin.H{
				"required": accessKey != "",
				"header":   "X-API-Key",
			},
		})
	})
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/health", handler.HealthCheck)
	r.GET("/stats", handler.GetStats)
	r.GET("/quota", handler.GetQuota)
	r.GET("/notifications", handler.GetNotifications)

	protected := r.Group("/")
	if accessKey != "" {
		protected.Use(authMiddleware(accessKey))
	}
	protected.POST("/trigger", handler.TriggerIntake)
	protected.POST("/trigger/hourly", handler.TriggerDigest)
	protected.GET("/subscribers", handler.ListSubscribers)
	protected.POST("/subscribers", handler.CreateSubscriber)
	protected.PUT("/subscribers/:id/tier", handler.UpdateSubscriberTier)
	protected.DELETE("/subscribers/:id", handler.DeactivateSubscriber)

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

func authMiddleware(accessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-Key") != accessKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}
