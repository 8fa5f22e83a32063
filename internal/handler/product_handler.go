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

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Cost     *float64 `json:"cost"`
	Stock    *int     `json:"stock"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
}

// ProductHandler serves the /api/products endpoints
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// List retrieves all products
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var products []model.Product
	if err := h.db.Find(&products).Error; err != nil {
		log.Error("Failed to retrieve products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar produtos",
		})
	}

	return c.JSON(http.StatusOK, serializer.Products(products))
}

// Create creates a new product. The SKU is globally unique: a duplicate
// fails with 409 and leaves the catalog untouched.
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "create")

	var req ProductRequest
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
	if req.SKU == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "SKU é obrigatório",
		})
	}
	if req.Price == nil || req.Cost == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Preço e custo são obrigatórios",
		})
	}
	if *req.Price < 0 || *req.Cost < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Valores monetários não podem ser negativos",
		})
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Estoque não pode ser negativo",
		})
	}

	// Check if a product with the same SKU already exists
	var count int64
	h.db.Model(&model.Product{}).Where("sku = ?", req.SKU).Count(&count)
	if count > 0 {
		log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Já existe um produto com este SKU",
		})
	}

	product := model.Product{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Price:    roundMoney(*req.Price),
		Cost:     roundMoney(*req.Cost),
		Stock:    stock,
		Colors:   model.StringList(req.Colors),
		Sizes:    model.StringList(req.Sizes),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.db.Create(&product).Error; err != nil {
		log.Error("Failed to create product", zap.String("sku", req.SKU), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar produto",
		})
	}

	log.Info("Product created", zap.Uint("id", product.ID), zap.String("sku", product.SKU))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      product.ID,
		"message": "Produto criado com sucesso",
	})
}
