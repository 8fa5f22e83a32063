package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, fieldName, filename, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/prints/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir)

	c, rec := newUploadRequest(t, "file", "logo.png", "fake-png-bytes")
	require.NoError(t, h.Upload(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, rec, &resp)
	require.True(t, strings.HasPrefix(resp.URL, "/uploads/prints/"))
	require.True(t, strings.HasSuffix(resp.URL, "_logo.png"))

	stored := filepath.Join(dir, "prints", filepath.Base(resp.URL))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	require.Equal(t, "fake-png-bytes", string(data))
}

func TestUploadSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir)

	c, rec := newUploadRequest(t, "file", "../../etc/pass wd.png", "x")
	require.NoError(t, h.Upload(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, rec, &resp)
	require.NotContains(t, resp.URL, "..")
	require.NotContains(t, resp.URL, " ")
	require.True(t, strings.HasSuffix(resp.URL, "_pass_wd.png"))
}

func TestUploadWithoutFileFails(t *testing.T) {
	h := NewUploadHandler(t.TempDir())

	c, rec := newUploadRequest(t, "attachment", "logo.png", "x")
	require.NoError(t, h.Upload(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "Nenhum arquivo enviado", resp.Error)
}
