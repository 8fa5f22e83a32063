package handler

import (
	"net/http"
	"time"

	"emunah-backend/internal/model"
	"emunah-backend/internal/serializer"
	"emunah-backend/pkg/logger"
	"emunah-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PrintRequest defines the structure for print creation requests
type PrintRequest struct {
	Name      string   `json:"name"`
	Technique string   `json:"technique"`
	Colors    string   `json:"colors"`
	ImageURL  string   `json:"imageUrl"`
	ImageType string   `json:"imageType"`
	Tags      []string `json:"tags"`
}

// PrintHandler serves the /api/prints endpoints
type PrintHandler struct {
	db *gorm.DB
}

// NewPrintHandler creates a PrintHandler
func NewPrintHandler(db *gorm.DB) *PrintHandler {
	return &PrintHandler{db: db}
}

// List retrieves all prints
func (h *PrintHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("print", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var prints []model.Print
	if err := h.db.Find(&prints).Error; err != nil {
		log.Error("Failed to retrieve prints", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar estampas",
		})
	}

	return c.JSON(http.StatusOK, serializer.Prints(prints))
}

// Create creates a new print design
func (h *PrintHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("print", "create")

	var req PrintRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Dados inválidos",
		})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Nome é obrigatório",
		})
	}

	imageType := req.ImageType
	if imageType == "" {
		imageType = model.PrintImageURL
	}
	if !model.ValidPrintImageType(imageType) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Tipo de imagem inválido",
		})
	}

	printItem := model.Print{
		Name:      req.Name,
		Technique: req.Technique,
		Colors:    req.Colors,
		ImageURL:  req.ImageURL,
		ImageType: imageType,
		Tags:      model.StringList(req.Tags),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.db.Create(&printItem).Error; err != nil {
		log.Error("Failed to create print", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar estampa",
		})
	}

	log.Info("Print created", zap.Uint("id", printItem.ID), zap.String("name", printItem.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      printItem.ID,
		"message": "Estampa criada com sucesso",
	})
}
