package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var gitSHA string
var buildDate string

func GetDataDir() string {
	value, exists := os.LookupEnv("NEWSROOM_DATA_DIR")
	if exists {
		return value
	}
	return "uploads"
}

// raw uploads are staged here until their transcode reaches a terminal state
func GetRawDir() string {
	return filepath.Join(GetDataDir(), "raw")
}

func GetCompressedDir() string {
	return filepath.Join(GetDataDir(), "compressed")
}

// defaults to "config", holds the sqlite database
func GetConfigDir() string {
	value, exists := os.LookupEnv("NEWSROOM_CONFIG_DIR")
	if exists {
		return value
	}
	return "config"
}

func GetJWTSecret() ([]byte, error) {
	key := "NEWSROOM_JWT_SECRET"
	value, exists := os.LookupEnv(key)
	if exists {
		return []byte(value), nil
	}
	return []byte{}, fmt.Errorf("please set %s", key)
}

func GetAdminInitialPassword() (string, error) {
	key := "NEWSROOM_ADMIN_INITIAL_PASSWORD"
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	return "", fmt.Errorf("please set %s", key)
}

// "queued" (default) or "inline"
func GetTranscodeMode() string {
	if value, exists := os.LookupEnv("NEWSROOM_TRANSCODE_MODE"); exists {
		lower := strings.ToLower(value)
		if lower == "inline" || lower == "queued" {
			return lower
		}
	}
	return "queued"
}

func GetWorkerCount() int {
	if value, exists := os.LookupEnv("NEWSROOM_WORKER_COUNT"); exists {
		n, err := strconv.Atoi(value)
		if err == nil && n > 0 {
			return n
		}
	}
	return 2
}

func GetFFmpegPath() string {
	if value, exists := os.LookupEnv("NEWSROOM_FFMPEG"); exists {
		return value
	}
	return "ffmpeg"
}

func GetFFprobePath() string {
	if value, exists := os.LookupEnv("NEWSROOM_FFPROBE"); exists {
		return value
	}
	return "ffprobe"
}

func GetListenAddr() string {
	if value, exists := os.LookupEnv("NEWSROOM_LISTEN"); exists {
		return value
	}
	return ":8080"
}

func GetGitSHA() string {
	if gitSHA == "" {
		return "<not provided>"
	} else {
		return gitSHA
	}
}

func GetBuildDate() string {
	if buildDate == "" {
		return "<not provided>"
	} else {
		return buildDate
	}
}
