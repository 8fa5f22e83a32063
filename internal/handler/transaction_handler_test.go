package handler

import (
	"net/http"
	"testing"

	"emunah-backend/internal/model"
	"emunah-backend/internal/numbering"
	"emunah-backend/internal/serializer"

	"github.com/stretchr/testify/require"
)

func TestTransactionCreateAssignsNumber(t *testing.T) {
	db := setupTestDB(t)
	h := NewTransactionHandler(db, numbering.NewGenerator())

	c, rec := newRequest(http.MethodPost, "/api/transactions",
		`{"description":"rent","category":"Despesas Fixas","type":"expense","amount":100.00,"status":"Pendente"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID                uint   `json:"id"`
		TransactionNumber string `json:"transactionNumber"`
		Message           string `json:"message"`
	}
	decodeBody(t, rec, &created)
	require.Equal(t, "TRX-9800", created.TransactionNumber)
	require.Equal(t, "Transação criada com sucesso", created.Message)

	c, rec = newRequest(http.MethodPost, "/api/transactions",
		`{"description":"sale","type":"income","amount":500,"status":"Confirmado","date":"2024-05-10"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeBody(t, rec, &created)
	require.Equal(t, "TRX-9801", created.TransactionNumber)
}

func TestTransactionListSortedByDateDescending(t *testing.T) {
	db := setupTestDB(t)
	h := NewTransactionHandler(db, numbering.NewGenerator())

	for _, body := range []string{
		`{"description":"jan","type":"expense","amount":10,"date":"2024-01-10"}`,
		`{"description":"mar","type":"income","amount":30,"date":"2024-03-05"}`,
		`{"description":"feb","type":"expense","amount":20,"date":"2024-02-01"}`,
	} {
		c, rec := newRequest(http.MethodPost, "/api/transactions", body)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	c, rec := newRequest(http.MethodGet, "/api/transactions", "")
	require.NoError(t, h.List(c))

	var transactions []serializer.TransactionView
	decodeBody(t, rec, &transactions)
	require.Len(t, transactions, 3)
	require.Equal(t, "mar", transactions[0].Description)
	require.Equal(t, "feb", transactions[1].Description)
	require.Equal(t, "jan", transactions[2].Description)
	require.Equal(t, "05/03/2024", transactions[0].Date)
}

func TestTransactionCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewTransactionHandler(db, numbering.NewGenerator())

	// Missing description
	c, rec := newRequest(http.MethodPost, "/api/transactions", `{"type":"income","amount":10}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown type
	c, rec = newRequest(http.MethodPost, "/api/transactions", `{"description":"d","type":"transfer","amount":10}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Negative amount
	c, rec = newRequest(http.MethodPost, "/api/transactions", `{"description":"d","type":"income","amount":-1}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Dangling order reference
	c, rec = newRequest(http.MethodPost, "/api/transactions", `{"description":"d","type":"income","amount":10,"orderId":7}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	require.Zero(t, count)
}
