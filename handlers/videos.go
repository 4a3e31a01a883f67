package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"newsroom-video/media"
)

type assetSummary struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"originalFilename"`
	StoredFilename   string    `json:"storedFilename"`
	Uploader         string    `json:"uploader"`
	Events           []string  `json:"events"`
	UploadDate       time.Time `json:"uploadDate"`
	Duration         float64   `json:"duration"`
	Size             int64     `json:"size"`
	Width            uint      `json:"width"`
	Height           uint      `json:"height"`
}

// VideosGet lists assets, optionally filtered to one event tag.
func VideosGet(c echo.Context) error {
	assets, err := media.List(c.QueryParam("event"))
	if err != nil {
		return serverError(c, "Server error listing videos.", err)
	}

	summaries := make([]assetSummary, 0, len(assets))
	for _, a := range assets {
		summaries = append(summaries, assetSummary{
			ID:               a.ID,
			OriginalFilename: a.OriginalFilename,
			StoredFilename:   a.StoredFilename,
			Uploader:         a.Uploader.Username,
			Events:           a.TagNames(),
			UploadDate:       a.CreatedAt,
			Duration:         a.DurationSecs,
			Size:             a.Size,
			Width:            a.Width,
			Height:           a.Height,
		})
	}
	return c.JSON(http.StatusOK, summaries)
}
