package transcode

import (
	"fmt"

	"newsroom-video/ffmpeg"
)

// Runner issues an encode and reports its terminal state on the returned
// channel. Exactly one value is delivered: nil on success, an error on
// failure. On failure the output file's contents are undefined and callers
// must not publish an asset that points at it.
type Runner interface {
	Start(inputPath, outputPath string, spec Spec) <-chan error
}

// Executor runs encodes with the external ffmpeg binary. It never touches
// the database and never deletes inputs; terminal-state side effects belong
// to the caller.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

func (e *Executor) Start(inputPath, outputPath string, spec Spec) <-chan error {
	log.Debugf("encode %s -> %s (%s %s %dk @%dfps)",
		inputPath, outputPath, spec.Codec, spec.Dimensions(), spec.Kbps, spec.FPS)
	done := make(chan error, 1)
	go func() {
		done <- e.run(inputPath, outputPath, spec)
	}()
	return done
}

func (e *Executor) run(inputPath, outputPath string, spec Spec) error {
	_, stderr, err := ffmpeg.Ffmpeg(
		"-i", inputPath,
		"-c:v", spec.Codec,
		"-s", spec.Dimensions(),
		"-b:v", fmt.Sprintf("%dk", spec.Kbps),
		"-r", fmt.Sprintf("%d", spec.FPS),
		"-y",
		outputPath,
	)
	if err != nil {
		return fmt.Errorf("encode %s -> %s: %w: %s", inputPath, outputPath, err, tail(stderr, 512))
	}
	return nil
}

func tail(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[len(b)-n:])
}
