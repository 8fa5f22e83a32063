package handler

import (
	"net/http"
	"testing"
	"time"

	"emunah-backend/internal/model"
	"emunah-backend/internal/numbering"
	"emunah-backend/internal/serializer"

	"github.com/stretchr/testify/require"
)

func TestQuoteCreateAssignsNumber(t *testing.T) {
	db := setupTestDB(t)
	h := NewQuoteHandler(db, numbering.NewGenerator())

	c, rec := newRequest(http.MethodPost, "/api/quotes",
		`{"leadName":"Fulano","leadContact":"(11) 90000-0000","itemsSummary":"30x camisetas","totalValue":900}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID          uint   `json:"id"`
		QuoteNumber string `json:"quoteNumber"`
		Message     string `json:"message"`
	}
	decodeBody(t, rec, &created)
	require.Equal(t, "COT-2024-001", created.QuoteNumber)
	require.Equal(t, "Cotação criada com sucesso", created.Message)

	c, rec = newRequest(http.MethodPost, "/api/quotes",
		`{"leadName":"Beltrano","itemsSummary":"10x moletons","totalValue":950}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeBody(t, rec, &created)
	require.Equal(t, "COT-2024-002", created.QuoteNumber)
}

func TestQuoteClientPrecedenceOverLead(t *testing.T) {
	db := setupTestDB(t)
	client := model.Client{Name: "Igreja Batista Central", Contact: "Pastor João"}
	require.NoError(t, db.Create(&client).Error)

	h := NewQuoteHandler(db, numbering.NewGenerator())

	// Both clientId and leadName set: the linked client wins
	c, rec := newRequest(http.MethodPost, "/api/quotes",
		`{"clientId":1,"leadName":"Fulano","leadContact":"x","itemsSummary":"50x camisetas","totalValue":1750,"status":"Pendente"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/quotes", "")
	require.NoError(t, h.List(c))

	var quotes []serializer.QuoteView
	decodeBody(t, rec, &quotes)
	require.Len(t, quotes, 1)
	require.Equal(t, "Igreja Batista Central", quotes[0].ClientName)
	require.Equal(t, "Pastor João", quotes[0].Contact)
	require.NotNil(t, quotes[0].ClientID)
	require.Equal(t, time.Now().Format(serializer.DateLayout), quotes[0].Date)
}

func TestQuoteLeadFallback(t *testing.T) {
	db := setupTestDB(t)
	h := NewQuoteHandler(db, numbering.NewGenerator())

	c, rec := newRequest(http.MethodPost, "/api/quotes",
		`{"leadName":"Fulano","leadContact":"(11) 90000-0000","itemsSummary":"30x camisetas","totalValue":900}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/quotes", "")
	require.NoError(t, h.List(c))

	var quotes []serializer.QuoteView
	decodeBody(t, rec, &quotes)
	require.Len(t, quotes, 1)
	require.Equal(t, "Fulano", quotes[0].ClientName)
	require.Equal(t, "(11) 90000-0000", quotes[0].Contact)
	require.Nil(t, quotes[0].ClientID)
	require.Equal(t, model.QuoteDraft, quotes[0].Status)
}

func TestQuoteCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewQuoteHandler(db, numbering.NewGenerator())

	// Missing items summary
	c, rec := newRequest(http.MethodPost, "/api/quotes", `{"leadName":"X","totalValue":10}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown status
	c, rec = newRequest(http.MethodPost, "/api/quotes",
		`{"leadName":"X","itemsSummary":"s","totalValue":10,"status":"Inexistente"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown client reference
	c, rec = newRequest(http.MethodPost, "/api/quotes",
		`{"clientId":42,"itemsSummary":"s","totalValue":10}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	db.Model(&model.Quote{}).Count(&count)
	require.Zero(t, count)
}
