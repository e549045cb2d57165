package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	surveyH *SurveyHandler,
	assetH *AssetHandler,
	adminH *AdminHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS abierto (el frontend
	// se sirve desde otro origen).
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Admin-Token"},
		MaxAge:          12 * time.Hour,
	}))

	survey := r.Group("/api/survey")
	survey.GET("/questions", surveyH.GetQuestions)
	survey.POST("/submit", surveyH.SubmitSurvey)
	survey.GET("/icon/:filename", assetH.GetIcon)
	survey.GET("/school-icon/:filename", assetH.GetSchoolIcon)

	admin := r.Group("/admin")
	admin.POST("/reload", adminH.ReloadDataset)

	r.GET("/healthz", surveyH.Health)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
