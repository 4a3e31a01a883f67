package transcode

import (
	"fmt"
	"strconv"
)

// Framerate is not user-configurable; every encode runs at 30fps.
const Framerate = 30

// Spec is the concrete encoder invocation derived from user-supplied choices.
type Spec struct {
	Codec  string // ffmpeg encoder name
	Width  uint
	Height uint
	Kbps   uint
	FPS    uint
}

// MapCodec translates the user-facing codec choice into an ffmpeg encoder.
// Unknown or empty values fall back to libx264.
func MapCodec(choice string) string {
	switch choice {
	case "h264":
		return "libx264"
	case "h265":
		return "libx265"
	case "h264_nvenc", "h264-hw":
		return "h264_nvenc"
	case "h265_nvenc", "h265-hw":
		return "hevc_nvenc"
	default:
		return "libx264"
	}
}

// MapResolution translates a resolution label into pixel dimensions.
// Unknown or empty values fall back to 1920x1080.
func MapResolution(choice string) (uint, uint) {
	switch choice {
	case "720":
		return 1280, 720
	case "1080":
		return 1920, 1080
	case "1440":
		return 2560, 1440
	case "2160":
		return 3840, 2160
	default:
		return 1920, 1080
	}
}

// ParseBitrate converts a Mbps string into Kbps. Unlike codec and resolution
// there is no fallback: a value that doesn't parse as a positive integer is
// a validation error and the job must not be submitted.
func ParseBitrate(mbps string) (uint, error) {
	n, err := strconv.Atoi(mbps)
	if err != nil {
		return 0, fmt.Errorf("bitrate %q is not numeric", mbps)
	}
	if n <= 0 {
		return 0, fmt.Errorf("bitrate %q must be positive", mbps)
	}
	return uint(n) * 1000, nil
}

// BuildSpec maps the three user-supplied job parameters onto an encoder
// invocation. Only the bitrate can fail.
func BuildSpec(codec, resolution, bitrateMbps string) (Spec, error) {
	kbps, err := ParseBitrate(bitrateMbps)
	if err != nil {
		return Spec{}, err
	}
	w, h := MapResolution(resolution)
	return Spec{
		Codec:  MapCodec(codec),
		Width:  w,
		Height: h,
		Kbps:   kbps,
		FPS:    Framerate,
	}, nil
}

func (s Spec) Dimensions() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
