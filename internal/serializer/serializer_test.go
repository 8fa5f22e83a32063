package serializer

import (
	"testing"
	"time"

	"emunah-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestQuotePrefersLinkedClient(t *testing.T) {
	clientID := uint(3)
	q := model.Quote{
		ID:          1,
		QuoteNumber: "COT-2024-001",
		ClientID:    &clientID,
		Client:      &model.Client{ID: clientID, Name: "Igreja Batista Central", Contact: "Pastor João"},
		LeadName:    "Fulano",
		LeadContact: "(11) 90000-0000",
		TotalValue:  1750,
		Status:      model.QuotePending,
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	view := Quote(&q)
	require.Equal(t, "Igreja Batista Central", view.ClientName)
	require.Equal(t, "Pastor João", view.Contact)
	require.Equal(t, "01/06/2024", view.Date)
}

func TestQuoteFallsBackToLead(t *testing.T) {
	q := model.Quote{
		QuoteNumber: "COT-2024-002",
		LeadName:    "Fulano",
		LeadContact: "(11) 90000-0000",
	}

	view := Quote(&q)
	require.Equal(t, "Fulano", view.ClientName)
	require.Equal(t, "(11) 90000-0000", view.Contact)
	require.Nil(t, view.ClientID)
}

func TestOrderDeliveryDateNullWhenAbsent(t *testing.T) {
	o := model.Order{
		OrderNumber: "PED-1024",
		Client:      model.Client{Name: "C"},
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	view := Order(&o)
	require.Nil(t, view.DeliveryDate)
	require.Equal(t, "01/06/2024", view.Date)

	delivery := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	o.DeliveryDate = &delivery
	view = Order(&o)
	require.NotNil(t, view.DeliveryDate)
	require.Equal(t, "15/07/2024", *view.DeliveryDate)
}
