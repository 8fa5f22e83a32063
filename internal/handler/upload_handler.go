package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"emunah-backend/pkg/logger"
	"emunah-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadHandler serves the /api/prints/upload endpoint
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates an UploadHandler storing files under uploadDir
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload stores an uploaded print image and returns its relative URL
func (h *UploadHandler) Upload(c echo.Context) error {
	log := logger.FromEcho(c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Nenhum arquivo enviado",
		})
	}

	filename := sanitizeFilename(file.Filename)
	if filename == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Nome de arquivo inválido",
		})
	}
	filename = fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), filename)

	dir := filepath.Join(h.uploadDir, "prints")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Failed to create upload directory", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao salvar arquivo",
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao salvar arquivo",
		})
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		log.Error("Failed to create file", zap.String("filename", filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao salvar arquivo",
		})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error("Failed to write file", zap.String("filename", filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao salvar arquivo",
		})
	}

	prometheus.RecordUpload()
	log.Info("Print image uploaded", zap.String("filename", filename))
	return c.JSON(http.StatusOK, echo.Map{
		"url": "/uploads/prints/" + filename,
	})
}

// sanitizeFilename strips any path components and characters outside a
// safe set, so the stored name cannot escape the upload directory
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "." || cleaned == ".." {
		return ""
	}
	return cleaned
}
