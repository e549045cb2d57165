package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-compass/internal/service"
)

// SurveyHandler mantiene dependencias para endpoints del cuestionario.
type SurveyHandler struct {
	logger  *zap.Logger
	surveys *service.SurveyService
	limiter service.SubmitRateLimiter
}

// NewSurveyHandler crea una instancia de SurveyHandler con dependencias necesarias.
func NewSurveyHandler(logger *zap.Logger, surveys *service.SurveyService, limiter service.SubmitRateLimiter) *SurveyHandler {
	return &SurveyHandler{
		logger:  logger,
		surveys: surveys,
		limiter: limiter,
	}
}

// GetQuestions maneja GET /api/survey/questions.
func (h *SurveyHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.surveys.Questions())
}

// SubmitSurvey maneja POST /api/survey/submit.
func (h *SurveyHandler) SubmitSurvey(c *gin.Context) {
	var req struct {
		Answers []string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions, try again later"})
		return
	}

	result, err := h.surveys.Score(req.Answers)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		// DataIntegrityError o cualquier otra falla interna.
		h.logger.Error("score survey failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process survey"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health maneja GET /healthz con los conteos del snapshot vigente.
func (h *SurveyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"dataset": h.surveys.Stats(),
	})
}
