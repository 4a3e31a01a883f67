package handlers

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadGetAttachment(t *testing.T) {
	newTestEnv(t, "queued")
	asset := storedAsset(t, "field-report.mp4", []byte("encoded bytes"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("assetId")
	c.SetParamValues(asset.ID)
	require.NoError(t, DownloadGet(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "field-report.mp4")
	assert.Equal(t, "encoded bytes", rec.Body.String())
}

func TestDownloadGetMissingFile(t *testing.T) {
	newTestEnv(t, "queued")
	asset := orphanAsset(t, "gone.mp4")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("assetId")
	c.SetParamValues(asset.ID)
	require.NoError(t, DownloadGet(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func bulkRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, DownloadBulkPost(c))
	return rec
}

func TestBulkDownloadSkipsUnresolvable(t *testing.T) {
	newTestEnv(t, "queued")
	good := storedAsset(t, "kept.mp4", []byte("encoded bytes"))
	gone := orphanAsset(t, "lost.mp4")

	rec := bulkRequest(t, `{"assetIds":["`+good.ID+`","`+gone.ID+`","never-existed"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get(echo.HeaderContentType))

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "kept.mp4", zr.File[0].Name)
}

func TestBulkDownloadEntriesUseOriginalNames(t *testing.T) {
	newTestEnv(t, "queued")
	a := storedAsset(t, "morning.mp4", []byte("a"))
	b := storedAsset(t, "evening.mp4", []byte("b"))

	rec := bulkRequest(t, `{"assetIds":["`+a.ID+`","`+b.ID+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "morning.mp4", zr.File[0].Name)
	assert.Equal(t, "evening.mp4", zr.File[1].Name)
}

func TestBulkDownloadRejectsEmptyList(t *testing.T) {
	newTestEnv(t, "queued")

	rec := bulkRequest(t, `{"assetIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = bulkRequest(t, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
