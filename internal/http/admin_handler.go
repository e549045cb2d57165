package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-compass/internal/dataset"
)

// AdminHandler mantiene dependencias para endpoints administrativos.
type AdminHandler struct {
	logger *zap.Logger
	loader *dataset.Loader
	store  *dataset.Store
	token  string
}

// NewAdminHandler crea una instancia de AdminHandler con dependencias necesarias.
func NewAdminHandler(logger *zap.Logger, loader *dataset.Loader, store *dataset.Store, token string) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		loader: loader,
		store:  store,
		token:  token,
	}
}

// ReloadDataset maneja POST /admin/reload: construye un snapshot nuevo
// desde la base y lo publica con un swap atomico. Los requests en vuelo
// siguen usando su referencia anterior.
func (h *AdminHandler) ReloadDataset(c *gin.Context) {
	if h.token == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin endpoints disabled"})
		return
	}
	provided := c.GetHeader("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
		return
	}

	snap, err := h.loader.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("dataset reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reload dataset"})
		return
	}

	previous := h.store.Replace(snap)
	h.logger.Info("dataset snapshot swapped",
		zap.String("previous_id", previous.ID),
		zap.String("current_id", snap.ID),
	)

	c.JSON(http.StatusOK, gin.H{"dataset": snap.Stats()})
}
