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

// QuoteRequest defines the structure for quote creation requests
type QuoteRequest struct {
	ClientID     *uint    `json:"clientId"`
	LeadName     string   `json:"leadName"`
	LeadContact  string   `json:"leadContact"`
	ItemsSummary string   `json:"itemsSummary"`
	TotalValue   *float64 `json:"totalValue"`
	Status       string   `json:"status"`
}

// QuoteHandler serves the /api/quotes endpoints
type QuoteHandler struct {
	db      *gorm.DB
	numbers *numbering.Generator
}

// NewQuoteHandler creates a QuoteHandler
func NewQuoteHandler(db *gorm.DB, numbers *numbering.Generator) *QuoteHandler {
	return &QuoteHandler{db: db, numbers: numbers}
}

// List retrieves all quotes with their linked clients resolved
func (h *QuoteHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("quote", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var quotes []model.Quote
	if err := h.db.Preload("Client").Find(&quotes).Error; err != nil {
		log.Error("Failed to retrieve quotes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar cotações",
		})
	}

	return c.JSON(http.StatusOK, serializer.Quotes(quotes))
}

// Create creates a new quote, assigning its quote number
func (h *QuoteHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("quote", "create")

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Dados inválidos",
		})
	}

	if req.ItemsSummary == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Resumo de itens é obrigatório",
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

	status := req.Status
	if status == "" {
		status = model.QuoteDraft
	}
	if !model.ValidQuoteStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Status inválido",
		})
	}

	// A referenced client must exist; a quote without one carries the
	// lead fields instead
	if req.ClientID != nil {
		var count int64
		h.db.Model(&model.Client{}).Where("id = ?", *req.ClientID).Count(&count)
		if count == 0 {
			log.Warn("Quote references unknown client", zap.Uint("client_id", *req.ClientID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Cliente não encontrado",
			})
		}
	}

	quote := model.Quote{
		ClientID:     req.ClientID,
		LeadName:     req.LeadName,
		LeadContact:  req.LeadContact,
		ItemsSummary: req.ItemsSummary,
		TotalValue:   roundMoney(*req.TotalValue),
		Status:       status,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	quoteNumber, err := h.numbers.IssueQuoteNumber(h.db, func(number string) error {
		quote.QuoteNumber = number
		return h.db.Create(&quote).Error
	})
	if err != nil {
		log.Error("Failed to create quote", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar cotação",
		})
	}

	log.Info("Quote created",
		zap.Uint("id", quote.ID),
		zap.String("quote_number", quoteNumber))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":          quote.ID,
		"quoteNumber": quoteNumber,
		"message":     "Cotação criada com sucesso",
	})
}
