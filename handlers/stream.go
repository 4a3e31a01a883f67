package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"newsroom-video/media"
)

var errUnsatisfiable = errors.New("unsatisfiable range")

// parseRange interprets a single-range header of the form "bytes=START-END"
// against a file of `size` bytes. END is optional and defaults to the last
// byte. Only the first clause of a multi-range header is honored.
func parseRange(header string, size int64) (int64, int64, error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, fmt.Errorf("unsupported range unit in %q", header)
	}
	first, _, _ := strings.Cut(spec, ",")
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(first), "-")
	if !ok {
		return 0, 0, fmt.Errorf("malformed range %q", header)
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("malformed range start %q", header)
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed range end %q", header)
		}
	}
	if end > size-1 {
		end = size - 1
	}
	if start >= size || start > end {
		return 0, 0, errUnsatisfiable
	}
	return start, end, nil
}

// StreamGet serves an asset's bytes with range semantics for playback.
// A missing record and a missing backing file both surface as 404; the logs
// tell them apart.
func StreamGet(c echo.Context) error {
	asset, err := media.Find(c.Param("assetId"))
	if errors.Is(err, media.ErrNotFound) {
		return message(c, http.StatusNotFound, "Video not found")
	}
	if err != nil {
		return serverError(c, "Server error streaming video.", err)
	}

	fi, err := os.Stat(asset.StoragePath)
	if err != nil {
		log.Warnf("asset %s record exists but file %s is missing", asset.ID, asset.StoragePath)
		return message(c, http.StatusNotFound, "Video file not found on server")
	}
	size := fi.Size()

	f, err := os.Open(asset.StoragePath)
	if err != nil {
		return serverError(c, "Server error streaming video.", err)
	}
	defer f.Close()

	res := c.Response()
	res.Header().Set("Accept-Ranges", "bytes")

	rangeHeader := c.Request().Header.Get("Range")
	if rangeHeader == "" {
		res.Header().Set(echo.HeaderContentLength, strconv.FormatInt(size, 10))
		return c.Stream(http.StatusOK, "video/mp4", f)
	}

	start, end, err := parseRange(rangeHeader, size)
	if err != nil {
		res.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		return message(c, http.StatusRequestedRangeNotSatisfiable, "Invalid range")
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return serverError(c, "Server error streaming video.", err)
	}

	chunk := end - start + 1
	res.Header().Set(echo.HeaderContentType, "video/mp4")
	res.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	res.Header().Set(echo.HeaderContentLength, strconv.FormatInt(chunk, 10))
	res.WriteHeader(http.StatusPartialContent)
	_, err = io.CopyN(res, f, chunk)
	return err
}
