package handler

import (
	"net/http"
	"testing"

	"emunah-backend/internal/model"
	"emunah-backend/internal/serializer"

	"github.com/stretchr/testify/require"
)

func TestPrintCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	h := NewPrintHandler(db)

	c, rec := newRequest(http.MethodPost, "/api/prints",
		`{"name":"Leão de Judá","technique":"Silk 4 cores","colors":"Dourado, Preto","imageUrl":"/uploads/prints/leao.png","imageType":"url","tags":["religioso","leão"]}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &created)
	require.Equal(t, "Estampa criada com sucesso", created.Message)

	c, rec = newRequest(http.MethodGet, "/api/prints", "")
	require.NoError(t, h.List(c))

	var prints []serializer.PrintView
	decodeBody(t, rec, &prints)
	require.Len(t, prints, 1)
	require.Equal(t, "Leão de Judá", prints[0].Name)
	require.Equal(t, []string{"religioso", "leão"}, prints[0].Tags)
	require.Equal(t, model.PrintImageURL, prints[0].ImageType)
}

func TestPrintCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewPrintHandler(db)

	// Missing name
	c, rec := newRequest(http.MethodPost, "/api/prints", `{"technique":"Silk"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown image type
	c, rec = newRequest(http.MethodPost, "/api/prints", `{"name":"Logo","imageType":"svg"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	db.Model(&model.Print{}).Count(&count)
	require.Zero(t, count)
}
