package handlers

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"newsroom-video/media"
)

// DownloadGet serves one asset as an attachment under its original filename.
func DownloadGet(c echo.Context) error {
	asset, err := media.Find(c.Param("assetId"))
	if errors.Is(err, media.ErrNotFound) {
		return message(c, http.StatusNotFound, "Video not found")
	}
	if err != nil {
		return serverError(c, "Error downloading video", err)
	}

	if _, err := os.Stat(asset.StoragePath); err != nil {
		log.Warnf("asset %s record exists but file %s is missing", asset.ID, asset.StoragePath)
		return message(c, http.StatusNotFound, "Video file not found on server")
	}
	return c.Attachment(asset.StoragePath, asset.OriginalFilename)
}

type bulkDownloadRequest struct {
	AssetIDs []string `json:"assetIds"`
}

// DownloadBulkPost streams one zip containing every resolvable asset in the
// request. Assets whose record or backing file is gone are skipped with a
// log line rather than aborting the archive.
func DownloadBulkPost(c echo.Context) error {
	var req bulkDownloadRequest
	if err := c.Bind(&req); err != nil || len(req.AssetIDs) == 0 {
		return message(c, http.StatusBadRequest, "No videos selected")
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/zip")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=videos_%d.zip", time.Now().UnixMilli()))
	res.WriteHeader(http.StatusOK)

	zw := zip.NewWriter(res)
	for _, id := range req.AssetIDs {
		asset, err := media.Find(id)
		if err != nil {
			log.Warnf("bulk download: skipping %s: %v", id, err)
			continue
		}
		f, err := os.Open(asset.StoragePath)
		if err != nil {
			log.Warnf("bulk download: skipping %s: %v", id, err)
			continue
		}
		entry, err := zw.Create(asset.OriginalFilename)
		if err != nil {
			f.Close()
			return err
		}
		_, err = io.Copy(entry, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return zw.Close()
}
