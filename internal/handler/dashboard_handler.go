package handler

import (
	"net/http"
	"time"

	"emunah-backend/internal/model"
	"emunah-backend/pkg/logger"
	"emunah-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardHandler serves the /api/dashboard endpoints
type DashboardHandler struct {
	db *gorm.DB
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats computes the dashboard aggregates from current store contents.
// Nothing is cached; every call recomputes the filtered sums and counts.
func (h *DashboardHandler) Stats(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("dashboard", "stats")

	defer prometheus.TrackDBOperation("query")(time.Now())

	// Revenue counts only confirmed income
	var totalRevenue float64
	if err := h.db.Model(&model.Transaction{}).
		Where("type = ? AND status = ?", model.TransactionIncome, model.TransactionConfirmed).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		log.Error("Failed to compute revenue", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao calcular estatísticas",
		})
	}

	var pendingQuotes int64
	if err := h.db.Model(&model.Quote{}).
		Where("status = ?", model.QuotePending).
		Count(&pendingQuotes).Error; err != nil {
		log.Error("Failed to count pending quotes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao calcular estatísticas",
		})
	}

	var ordersInProduction int64
	if err := h.db.Model(&model.Order{}).
		Where("stage IN ?", model.ProductionStages).
		Count(&ordersInProduction).Error; err != nil {
		log.Error("Failed to count orders in production", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao calcular estatísticas",
		})
	}

	var totalClients int64
	if err := h.db.Model(&model.Client{}).Count(&totalClients).Error; err != nil {
		log.Error("Failed to count clients", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Erro ao calcular estatísticas",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalRevenue":       totalRevenue,
		"pendingQuotes":      pendingQuotes,
		"ordersInProduction": ordersInProduction,
		"totalClients":       totalClients,
	})
}
