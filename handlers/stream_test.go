package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		size      int64
		wantStart int64
		wantEnd   int64
		wantErr   bool
	}{
		{"window", "bytes=100-199", 1000, 100, 199, false},
		{"open end", "bytes=900-", 1000, 900, 999, false},
		{"whole file", "bytes=0-999", 1000, 0, 999, false},
		{"end clamped to size", "bytes=0-5000", 1000, 0, 999, false},
		{"first clause of multi-range", "bytes=0-99,200-299", 1000, 0, 99, false},
		{"start past end of file", "bytes=1000-", 1000, 0, 0, true},
		{"inverted", "bytes=200-100", 1000, 0, 0, true},
		{"not bytes", "items=0-10", 1000, 0, 0, true},
		{"garbage", "bytes=abc-def", 1000, 0, 0, true},
		{"no dash", "bytes=100", 1000, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseRange(tt.header, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func streamRequest(t *testing.T, assetID, rangeHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/videos/stream/:assetId")
	c.SetParamNames("assetId")
	c.SetParamValues(assetID)
	require.NoError(t, StreamGet(c))
	return rec
}

func testContent(n int) []byte {
	content := make([]byte, n)
	for i := range content {
		content[i] = byte(i % 251)
	}
	return content
}

func TestStreamFullFile(t *testing.T) {
	newTestEnv(t, "queued")
	content := testContent(1000)
	asset := storedAsset(t, "clip.mp4", content)

	rec := streamRequest(t, asset.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1000", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(t, "video/mp4", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.Equal(content, rec.Body.Bytes()))
}

func TestStreamRangeWindow(t *testing.T) {
	newTestEnv(t, "queued")
	content := testContent(1000)
	asset := storedAsset(t, "clip.mp4", content)

	rec := streamRequest(t, asset.ID, "bytes=100-199")
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 100-199/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, "100", rec.Header().Get(echo.HeaderContentLength))
	assert.True(t, bytes.Equal(content[100:200], rec.Body.Bytes()))
}

func TestStreamRangeOpenEnd(t *testing.T) {
	newTestEnv(t, "queued")
	content := testContent(1000)
	asset := storedAsset(t, "clip.mp4", content)

	rec := streamRequest(t, asset.ID, "bytes=900-")
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 900-999/1000", rec.Header().Get("Content-Range"))
	assert.Len(t, rec.Body.Bytes(), 100)
	assert.True(t, bytes.Equal(content[900:], rec.Body.Bytes()))
}

func TestStreamUnsatisfiableRange(t *testing.T) {
	newTestEnv(t, "queued")
	asset := storedAsset(t, "clip.mp4", testContent(1000))

	rec := streamRequest(t, asset.ID, "bytes=5000-")
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rec.Code)
	assert.Equal(t, "bytes */1000", rec.Header().Get("Content-Range"))
}

func TestStreamUnknownAsset(t *testing.T) {
	newTestEnv(t, "queued")

	rec := streamRequest(t, "no-such-asset", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamMissingFile(t *testing.T) {
	newTestEnv(t, "queued")
	asset := orphanAsset(t, "clip.mp4")

	rec := streamRequest(t, asset.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
