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

// SupplierRequest defines the structure for supplier creation requests
type SupplierRequest struct {
	Name               string `json:"name"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Category           string `json:"category"`
	Status             string `json:"status"`
	Rating             *int   `json:"rating"`
	ProductionTimeDays *int   `json:"productionTimeDays"`
}

// SupplierHandler serves the /api/suppliers endpoints
type SupplierHandler struct {
	db *gorm.DB
}

// NewSupplierHandler creates a SupplierHandler
func NewSupplierHandler(db *gorm.DB) *SupplierHandler {
	return &SupplierHandler{db: db}
}

// List retrieves all suppliers
func (h *SupplierHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("supplier", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var suppliers []model.Supplier
	if err := h.db.Find(&suppliers).Error; err != nil {
		log.Error("Failed to retrieve suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar fornecedores",
		})
	}

	return c.JSON(http.StatusOK, serializer.Suppliers(suppliers))
}

// Create creates a new supplier
func (h *SupplierHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("supplier", "create")

	var req SupplierRequest
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

	status := req.Status
	if status == "" {
		status = model.SupplierActive
	}
	if !model.ValidSupplierStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Status inválido",
		})
	}

	supplier := model.Supplier{
		Name:               req.Name,
		Contact:            req.Contact,
		Email:              req.Email,
		Phone:              req.Phone,
		Category:           req.Category,
		Status:             status,
		Rating:             5,
		ProductionTimeDays: 7,
	}
	if req.Rating != nil {
		supplier.Rating = *req.Rating
	}
	if req.ProductionTimeDays != nil {
		supplier.ProductionTimeDays = *req.ProductionTimeDays
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.db.Create(&supplier).Error; err != nil {
		log.Error("Failed to create supplier", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar fornecedor",
		})
	}

	log.Info("Supplier created", zap.Uint("id", supplier.ID), zap.String("name", supplier.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      supplier.ID,
		"message": "Fornecedor criado com sucesso",
	})
}
