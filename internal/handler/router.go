package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"algoconfig/internal/service"
)

// NewRouter assembles the full HTTP surface: panic recovery, CORS,
// health, docs, the /configs resource, and the catch-all 404.
func NewRouter(svc *service.ConfigService, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered), zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			gin.H{"error": "Internal server error"})
	}))
	engine.Use(corsMiddleware())
	engine.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "Route not found")
	})

	healthHandler := &HealthHandler{}
	healthHandler.Register(engine)
	RegisterDocs(engine)
	configHandler := &ConfigHandler{Service: svc, Logger: logger}
	configHandler.Register(engine)

	return engine
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
