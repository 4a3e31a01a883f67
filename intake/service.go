package intake

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"newsroom-video/config"
	"newsroom-video/database"
	"newsroom-video/transcode"
)

const (
	ModeInline = "inline"
	ModeQueued = "queued"
)

var (
	ErrValidation   = errors.New("invalid upload parameters")
	ErrEncodeFailed = errors.New("encode failed")
)

// Request is one upload: who sent it, what it's called, and the job
// parameters chosen on the upload form.
type Request struct {
	UploaderID       uint
	OriginalFilename string
	TagsCSV          string
	Codec            string
	Resolution       string
	Bitrate          string
}

// Result of a submit. Inline mode carries the published AssetID; queued mode
// carries the queue row's JobID and Queued=true.
type Result struct {
	AssetID string
	JobID   uint
	Queued  bool
}

// Service accepts raw uploads and runs them through the transcode pipeline,
// either holding the request open until the encode finishes (inline) or
// parking the job on the durable queue for the worker pool (queued).
type Service struct {
	mode   string
	runner transcode.Runner
}

func New(mode string, runner transcode.Runner) *Service {
	return &Service{mode: mode, runner: runner}
}

func (s *Service) Mode() string { return s.mode }

// Submit validates the job parameters, stages the raw bytes, and dispatches
// the transcode. Parameters are checked before any byte is staged, so a bad
// bitrate never leaves an orphan in the raw dir.
func (s *Service) Submit(req Request, file io.Reader) (Result, error) {
	spec, err := transcode.BuildSpec(req.Codec, req.Resolution, req.Bitrate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	base := filepath.Base(req.OriginalFilename)
	if base == "." || base == string(filepath.Separator) {
		return Result{}, fmt.Errorf("%w: missing filename", ErrValidation)
	}

	now := time.Now().UnixMilli()
	inputPath, err := stage(file, fmt.Sprintf("%d-%s", now, base))
	if err != nil {
		return Result{}, err
	}

	storedFilename := fmt.Sprintf("compressed_%d_%s", now, base)
	outputPath := filepath.Join(config.GetCompressedDir(), storedFilename)
	if err := os.MkdirAll(config.GetCompressedDir(), 0700); err != nil {
		return Result{}, err
	}

	job := transcode.Job{
		Status:           transcode.StatusPending,
		InputPath:        inputPath,
		OutputPath:       outputPath,
		StoredFilename:   storedFilename,
		OriginalFilename: base,
		UploaderID:       req.UploaderID,
		TagsCSV:          req.TagsCSV,
		Codec:            spec.Codec,
		Width:            spec.Width,
		Height:           spec.Height,
		Kbps:             spec.Kbps,
		FPS:              spec.FPS,
	}

	if s.mode == ModeQueued {
		if err := database.Get().Create(&job).Error; err != nil {
			return Result{}, err
		}
		log.Infof("queued job %d for %s", job.ID, base)
		return Result{JobID: job.ID, Queued: true}, nil
	}

	// inline: the request holds a slot until ffmpeg is done
	if err := <-s.runner.Start(job.InputPath, job.OutputPath, spec); err != nil {
		log.Errorf("inline encode failed, raw input retained at %s: %v", job.InputPath, err)
		return Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	asset, err := Finalize(&job)
	if err != nil {
		return Result{}, err
	}
	return Result{AssetID: asset.ID}, nil
}

// stage writes the raw upload to the staging dir. The copy lands under a
// .part name and is fsynced before the rename, so a file at the final path
// is always complete.
func stage(r io.Reader, storedName string) (string, error) {
	if err := os.MkdirAll(config.GetRawDir(), 0700); err != nil {
		return "", err
	}
	dst := filepath.Join(config.GetRawDir(), storedName)
	part := dst + ".part"

	f, err := os.Create(part)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(part)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(part)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(part)
		return "", err
	}
	if err := os.Rename(part, dst); err != nil {
		os.Remove(part)
		return "", err
	}
	return dst, nil
}
