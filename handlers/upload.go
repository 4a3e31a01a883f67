package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"newsroom-video/auth"
	"newsroom-video/intake"
)

// UploadPost receives a raw video plus job parameters and runs it through
// the transcode pipeline. In queued mode the reply is a 202 with the job id;
// in inline mode the reply carries the published asset id.
func UploadPost(c echo.Context) error {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		return message(c, http.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return message(c, http.StatusBadRequest, "Missing video file.")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return serverError(c, "Server error during file upload.", err)
	}
	defer src.Close()

	req := intake.Request{
		UploaderID:       ident.ID,
		OriginalFilename: fileHeader.Filename,
		TagsCSV:          c.FormValue("events"),
		Codec:            c.FormValue("codec"),
		Resolution:       c.FormValue("resolution"),
		Bitrate:          c.FormValue("bitrate"),
	}

	result, err := uploads.Submit(req, src)
	if errors.Is(err, intake.ErrValidation) {
		return message(c, http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, intake.ErrEncodeFailed) {
		return serverError(c, "Error during compression", err)
	}
	if err != nil {
		return serverError(c, "Server error during file upload.", err)
	}

	if result.Queued {
		return c.JSON(http.StatusAccepted, map[string]interface{}{
			"message": "Upload accepted, compression queued",
			"jobId":   result.JobID,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Upload and compression successful",
		"assetId": result.AssetID,
	})
}
