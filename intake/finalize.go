package intake

import (
	"os"

	"newsroom-video/ffmpeg"
	"newsroom-video/media"
	"newsroom-video/transcode"
)

// Finalize publishes the asset record for a successfully encoded job and
// removes the staged raw input. The record create is the commit point; the
// raw delete afterwards is best-effort and only logged on failure.
func Finalize(job *transcode.Job) (media.Asset, error) {
	asset := media.Asset{
		StoredFilename:   job.StoredFilename,
		StoragePath:      job.OutputPath,
		OriginalFilename: job.OriginalFilename,
		UploaderID:       job.UploaderID,
		Tags:             media.NewTags(media.ParseTags(job.TagsCSV)),
	}

	// metadata probing is advisory
	if size, err := fileSize(job.OutputPath); err == nil {
		asset.Size = size
	}
	if secs, err := ffmpeg.Duration(job.OutputPath); err == nil {
		asset.DurationSecs = secs
	} else {
		log.Warnf("probe duration of %s: %v", job.OutputPath, err)
	}
	if w, h, err := ffmpeg.Dimensions(job.OutputPath); err == nil {
		asset.Width = w
		asset.Height = h
	}

	if err := media.Create(&asset); err != nil {
		return media.Asset{}, err
	}

	if err := os.Remove(job.InputPath); err != nil {
		log.Warnf("couldn't remove staged input %s: %v", job.InputPath, err)
	}
	log.Infof("published asset %s from %s", asset.ID, job.OriginalFilename)
	return asset, nil
}

func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return -1, err
	}
	return fi.Size(), nil
}
