package ffmpeg

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"newsroom-video/config"
)

// runs ffprobe with the provided args and returns (stdout, stderr, error)
func Ffprobe(args ...string) ([]byte, []byte, error) {
	ffprobe := config.GetFFprobePath()
	log.Infoln(ffprobe, strings.Join(args, " "))
	cmd := exec.Command(ffprobe, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		log.Errorf("ffprobe error: %v", err)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// return the length in seconds of a media file at `path`
func Duration(path string) (float64, error) {
	stdout, _, err := Ffprobe("-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	if err != nil {
		return -1, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(stdout)), 64)
}

func videoStreamEntry(path, entry string) (uint, error) {
	stdout, _, err := Ffprobe("-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream="+entry, "-of", "csv=p=0", path)
	if err != nil {
		return 0, err
	}
	result, err := strconv.ParseUint(strings.TrimSpace(string(stdout)), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(result), nil
}

// pixel dimensions of the first video stream
func Dimensions(path string) (uint, uint, error) {
	w, err := videoStreamEntry(path, "width")
	if err != nil {
		return 0, 0, err
	}
	h, err := videoStreamEntry(path, "height")
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
