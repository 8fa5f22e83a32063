package handler

import (
	"net/http"
	"testing"

	"emunah-backend/internal/model"

	"github.com/stretchr/testify/require"
)

type dashboardStats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingQuotes      int64   `json:"pendingQuotes"`
	OrdersInProduction int64   `json:"ordersInProduction"`
	TotalClients       int64   `json:"totalClients"`
}

func getStats(t *testing.T, h *DashboardHandler) dashboardStats {
	t.Helper()
	c, rec := newRequest(http.MethodGet, "/api/dashboard/stats", "")
	require.NoError(t, h.Stats(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats dashboardStats
	decodeBody(t, rec, &stats)
	return stats
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	h := NewDashboardHandler(db)

	stats := getStats(t, h)
	require.Zero(t, stats.TotalRevenue)
	require.Zero(t, stats.PendingQuotes)
	require.Zero(t, stats.OrdersInProduction)
	require.Zero(t, stats.TotalClients)
}

func TestDashboardRevenueCountsOnlyConfirmedIncome(t *testing.T) {
	db := setupTestDB(t)
	h := NewDashboardHandler(db)

	seed := []model.Transaction{
		{TransactionNumber: "TRX-9800", Description: "sale", Type: model.TransactionIncome, Amount: 150, Status: model.TransactionConfirmed},
		{TransactionNumber: "TRX-9801", Description: "pending sale", Type: model.TransactionIncome, Amount: 999, Status: model.TransactionPending},
		{TransactionNumber: "TRX-9802", Description: "rent", Type: model.TransactionExpense, Amount: 100, Status: model.TransactionConfirmed},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	stats := getStats(t, h)
	require.Equal(t, 150.0, stats.TotalRevenue)

	// A confirmed income of X raises revenue by exactly X
	extra := model.Transaction{TransactionNumber: "TRX-9803", Description: "sale2", Type: model.TransactionIncome, Amount: 50.25, Status: model.TransactionConfirmed}
	require.NoError(t, db.Create(&extra).Error)

	stats = getStats(t, h)
	require.Equal(t, 200.25, stats.TotalRevenue)
}

func TestDashboardOrdersInProduction(t *testing.T) {
	db := setupTestDB(t)
	client := model.Client{Name: "C"}
	require.NoError(t, db.Create(&client).Error)

	stages := []string{
		model.StageAwaiting,
		model.StageCutting,
		model.StagePrinting,
		model.StageSewing,
		model.StageFinishing,
		model.StageQuality,
		model.StageDone,
	}
	for i, stage := range stages {
		order := model.Order{
			OrderNumber: "PED-" + string(rune('a'+i)),
			ClientID:    client.ID,
			TotalValue:  10,
			Stage:       stage,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	h := NewDashboardHandler(db)
	stats := getStats(t, h)
	// Only Corte, Estampa, Costura and Acabamento count as production
	require.Equal(t, int64(4), stats.OrdersInProduction)
	require.Equal(t, int64(1), stats.TotalClients)
}

func TestDashboardPendingQuotes(t *testing.T) {
	db := setupTestDB(t)
	h := NewDashboardHandler(db)

	quotes := []model.Quote{
		{QuoteNumber: "COT-2024-001", LeadName: "A", TotalValue: 10, Status: model.QuotePending},
		{QuoteNumber: "COT-2024-002", LeadName: "B", TotalValue: 20, Status: model.QuoteDraft},
		{QuoteNumber: "COT-2024-003", LeadName: "C", TotalValue: 30, Status: model.QuotePending},
	}
	for i := range quotes {
		require.NoError(t, db.Create(&quotes[i]).Error)
	}

	stats := getStats(t, h)
	require.Equal(t, int64(2), stats.PendingQuotes)
}
