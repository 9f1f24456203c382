package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/server/handlers"
)

// New wires the Gin engine with the admin panel routes and middlewares.
func New(handler *handlers.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	sess := api.Group("/session")
	sess.POST("/login", handler.Login)
	sess.POST("/logout", handler.Logout)
	sess.GET("/remembered", handler.Remembered)
	sess.GET("", handler.RequireSession(), handler.Me)

	authed := api.Group("", handler.RequireSession())

	authed.GET("/farms", handler.ListFarms)
	authed.POST("/farms", handler.CreateFarm)
	authed.GET("/farms/:id", handler.GetFarm)
	authed.PUT("/farms/:id", handler.UpdateFarm)
	authed.DELETE("/farms/:id", handler.DeleteFarm)

	authed.GET("/users", handler.ListUsers)
	authed.GET("/users/:id", handler.GetUser)
	authed.GET("/roles", handler.ListRoles)
	authed.GET("/roles/:id", handler.GetRole)
	authed.GET("/animals", handler.ListAnimals)
	authed.GET("/alerts", handler.ListAlerts)

	authed.GET("/estimations", handler.ListEstimations)
	authed.DELETE("/estimations/:id", handler.DeleteEstimation)
	authed.POST("/estimations/cache/clear", handler.ClearEstimationCache)

	authed.POST("/reports/:type", handler.DownloadReport)
	authed.GET("/ml/status", handler.MLStatus)
	authed.GET("/sync/health", handler.SyncHealth)

	if logger != nil {
		logger.Info("router initialized", zap.Int("routes", len(r.Routes())))
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("request completed", fields...)
			return
		}
		logger.Info("request completed", fields...)
	}
}
