package transcode

import "gorm.io/gorm"

const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusFailed  = "failed"
)

// Job is one request to turn a staged raw upload into a compressed output.
// In queued mode the row doubles as the durable queue entry: completed jobs
// are deleted, failed jobs stay behind with the raw input for inspection.
type Job struct {
	gorm.Model
	Status     string
	InputPath  string
	OutputPath string

	// carried through so the worker can create the asset record
	StoredFilename   string
	OriginalFilename string
	UploaderID       uint
	TagsCSV          string

	// encoder invocation
	Codec  string
	Width  uint
	Height uint
	Kbps   uint
	FPS    uint
}

func (j *Job) Spec() Spec {
	return Spec{
		Codec:  j.Codec,
		Width:  j.Width,
		Height: j.Height,
		Kbps:   j.Kbps,
		FPS:    j.FPS,
	}
}
