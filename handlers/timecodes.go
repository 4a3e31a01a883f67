package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"newsroom-video/media"
)

type timecodeRequest struct {
	Description string  `json:"description"`
	Timestamp   float64 `json:"timestamp"`
}

// TimecodePost appends an annotation to the asset's sequence.
func TimecodePost(c echo.Context) error {
	var req timecodeRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Malformed timecode.")
	}
	if req.Timestamp < 0 {
		return message(c, http.StatusBadRequest, "Timestamp must not be negative.")
	}

	err := media.AppendTimecode(c.Param("assetId"), req.Description, req.Timestamp)
	if errors.Is(err, media.ErrNotFound) {
		return message(c, http.StatusNotFound, "Video not found")
	}
	if err != nil {
		return serverError(c, "Failed to add timecode", err)
	}
	return message(c, http.StatusOK, "Timecode added successfully")
}

// TimecodesGet returns the asset's annotations in the order they were added.
func TimecodesGet(c echo.Context) error {
	tcs, err := media.Timecodes(c.Param("assetId"))
	if errors.Is(err, media.ErrNotFound) {
		return message(c, http.StatusNotFound, "Video not found")
	}
	if err != nil {
		return serverError(c, "Failed to retrieve timecodes", err)
	}
	return c.JSON(http.StatusOK, tcs)
}
