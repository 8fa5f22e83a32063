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

// TransactionRequest defines the structure for transaction creation requests
type TransactionRequest struct {
	OrderID     *uint    `json:"orderId"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Status      string   `json:"status"`
	Date        string   `json:"date"`
}

// TransactionHandler serves the /api/transactions endpoints
type TransactionHandler struct {
	db      *gorm.DB
	numbers *numbering.Generator
}

// NewTransactionHandler creates a TransactionHandler
func NewTransactionHandler(db *gorm.DB, numbers *numbering.Generator) *TransactionHandler {
	return &TransactionHandler{db: db, numbers: numbers}
}

// List retrieves all transactions, most recent transaction date first
func (h *TransactionHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var transactions []model.Transaction
	if err := h.db.Order("transaction_date desc").Find(&transactions).Error; err != nil {
		log.Error("Failed to retrieve transactions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar transações",
		})
	}

	return c.JSON(http.StatusOK, serializer.Transactions(transactions))
}

// Create creates a new transaction, assigning its transaction number
func (h *TransactionHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "create")

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Dados inválidos",
		})
	}

	if req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Descrição é obrigatória",
		})
	}
	if !model.ValidTransactionType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Tipo de transação inválido",
		})
	}
	if req.Amount == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Valor é obrigatório",
		})
	}
	if *req.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Valores monetários não podem ser negativos",
		})
	}

	status := req.Status
	if status == "" {
		status = model.TransactionPending
	}
	if !model.ValidTransactionStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Status inválido",
		})
	}

	if req.OrderID != nil {
		var count int64
		h.db.Model(&model.Order{}).Where("id = ?", *req.OrderID).Count(&count)
		if count == 0 {
			log.Warn("Transaction references unknown order", zap.Uint("order_id", *req.OrderID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Pedido não encontrado",
			})
		}
	}

	transactionDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Data inválida",
			})
		}
		transactionDate = d
	}

	transaction := model.Transaction{
		OrderID:         req.OrderID,
		Description:     req.Description,
		Category:        req.Category,
		Type:            req.Type,
		Amount:          roundMoney(*req.Amount),
		Status:          status,
		TransactionDate: transactionDate,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	transactionNumber, err := h.numbers.IssueTransactionNumber(h.db, func(number string) error {
		transaction.TransactionNumber = number
		return h.db.Create(&transaction).Error
	})
	if err != nil {
		log.Error("Failed to create transaction", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar transação",
		})
	}

	log.Info("Transaction created",
		zap.Uint("id", transaction.ID),
		zap.String("transaction_number", transactionNumber),
		zap.String("type", transaction.Type))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":                transaction.ID,
		"transactionNumber": transactionNumber,
		"message":           "Transação criada com sucesso",
	})
}
