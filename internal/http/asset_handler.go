package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssetHandler sirve iconos de personalidad y logos de instituciones desde
// disco, con fallback a un icono default cuando el archivo no existe.
type AssetHandler struct {
	logger    *zap.Logger
	staticDir string
}

// NewAssetHandler crea una instancia de AssetHandler con dependencias necesarias.
func NewAssetHandler(logger *zap.Logger, staticDir string) *AssetHandler {
	return &AssetHandler{
		logger:    logger,
		staticDir: staticDir,
	}
}

// GetIcon maneja GET /api/survey/icon/:filename.
func (h *AssetHandler) GetIcon(c *gin.Context) {
	name := cleanIconName(c.Param("filename"))
	h.serve(c, "icon", name)
}

// GetSchoolIcon maneja GET /api/survey/school-icon/:filename.
func (h *AssetHandler) GetSchoolIcon(c *gin.Context) {
	name := cleanSchoolIconName(c.Param("filename"))
	h.serve(c, "school_icon", name)
}

func (h *AssetHandler) serve(c *gin.Context, subdir, filename string) {
	path := filepath.Join(h.staticDir, subdir, filename)
	if _, err := os.Stat(path); err == nil {
		c.File(path)
		return
	}

	fallback := filepath.Join(h.staticDir, subdir, "default.png")
	if _, err := os.Stat(fallback); err == nil {
		h.logger.Debug("asset not found, serving default",
			zap.String("subdir", subdir),
			zap.String("filename", filename),
		)
		c.File(fallback)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "icon not found"})
}

// cleanIconName normaliza el nombre pedido: fuerza extension .png, quita
// espacios y evita escapes fuera del directorio de assets.
func cleanIconName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, " ", "")
	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}
	return name
}

// cleanSchoolIconName baja a minusculas y reemplaza espacios por guiones,
// el formato con el que se curan los logos de instituciones.
func cleanSchoolIconName(raw string) string {
	name := filepath.Base(strings.ToLower(strings.TrimSpace(raw)))
	name = strings.ReplaceAll(name, " ", "-")
	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}
	return name
}
