package handler

import (
	"net/http"
	"time"

	"emunah-backend/internal/model"
	"emunah-backend/internal/numbering"
	"emunah-backend/internal/serializer"
	"emunah-backend/pkg/logger"
	"emunah-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderRequest defines the structure for order creation requests
type OrderRequest struct {
	QuoteID      *uint    `json:"quoteId"`
	ClientID     *uint    `json:"clientId"`
	ItemsSummary string   `json:"itemsSummary"`
	TotalValue   *float64 `json:"totalValue"`
	DeliveryDate string   `json:"deliveryDate"`
	Stage        string   `json:"stage"`
	Progress     *int     `json:"progress"`
	Priority     string   `json:"priority"`
}

// OrderHandler serves the /api/orders endpoints
type OrderHandler struct {
	db      *gorm.DB
	numbers *numbering.Generator
}

// NewOrderHandler creates an OrderHandler
func NewOrderHandler(db *gorm.DB, numbers *numbering.Generator) *OrderHandler {
	return &OrderHandler{db: db, numbers: numbers}
}

// List retrieves all orders with their clients resolved
func (h *OrderHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("order", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var orders []model.Order
	if err := h.db.Preload("Client").Find(&orders).Error; err != nil {
		log.Error("Failed to retrieve orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar pedidos",
		})
	}

	return c.JSON(http.StatusOK, serializer.Orders(orders))
}

// Create creates a new order, assigning its order number. The client
// reference is required and must exist; an order is never created with
// a dangling reference.
func (h *OrderHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("order", "create")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Dados inválidos",
		})
	}

	if req.ClientID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Cliente é obrigatório",
		})
	}
	if req.TotalValue == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Valor total é obrigatório",
		})
	}
	if *req.TotalValue < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Valores monetários não podem ser negativos",
		})
	}

	var count int64
	h.db.Model(&model.Client{}).Where("id = ?", *req.ClientID).Count(&count)
	if count == 0 {
		log.Warn("Order references unknown client", zap.Uint("client_id", *req.ClientID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Cliente não encontrado",
		})
	}

	if req.QuoteID != nil {
		h.db.Model(&model.Quote{}).Where("id = ?", *req.QuoteID).Count(&count)
		if count == 0 {
			log.Warn("Order references unknown quote", zap.Uint("quote_id", *req.QuoteID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Cotação não encontrada",
			})
		}
	}

	stage := req.Stage
	if stage == "" {
		stage = model.StageAwaiting
	}
	if !model.ValidOrderStage(stage) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Etapa de produção inválida",
		})
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	if !model.ValidOrderPriority(priority) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Prioridade inválida",
		})
	}

	// Progress is clamped to [0,100]
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		d, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Data de entrega inválida",
			})
		}
		deliveryDate = &d
	}

	order := model.Order{
		QuoteID:      req.QuoteID,
		ClientID:     *req.ClientID,
		ItemsSummary: req.ItemsSummary,
		TotalValue:   roundMoney(*req.TotalValue),
		DeliveryDate: deliveryDate,
		Stage:        stage,
		Progress:     progress,
		Priority:     priority,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	orderNumber, err := h.numbers.IssueOrderNumber(h.db, func(number string) error {
		order.OrderNumber = number
		return h.db.Create(&order).Error
	})
	if err != nil {
		log.Error("Failed to create order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar pedido",
		})
	}

	log.Info("Order created",
		zap.Uint("id", order.ID),
		zap.String("order_number", orderNumber),
		zap.Uint("client_id", order.ClientID))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":          order.ID,
		"orderNumber": orderNumber,
		"message":     "Pedido criado com sucesso",
	})
}
