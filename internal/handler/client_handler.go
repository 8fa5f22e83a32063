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

// ClientRequest defines the structure for client creation requests
type ClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientHandler serves the /api/clients endpoints
type ClientHandler struct {
	db *gorm.DB
}

// NewClientHandler creates a ClientHandler
func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List retrieves all clients
func (h *ClientHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var clients []model.Client
	if err := h.db.Find(&clients).Error; err != nil {
		log.Error("Failed to retrieve clients", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao buscar clientes",
		})
	}

	return c.JSON(http.StatusOK, serializer.Clients(clients))
}

// Create creates a new client
func (h *ClientHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "create")

	var req ClientRequest
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

	client := model.Client{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.db.Create(&client).Error; err != nil {
		log.Error("Failed to create client", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao criar cliente",
		})
	}

	log.Info("Client created", zap.Uint("id", client.ID), zap.String("name", client.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      client.ID,
		"message": "Cliente criado com sucesso",
	})
}
