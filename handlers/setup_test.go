package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"newsroom-video/auth"
	"newsroom-video/database"
	"newsroom-video/ffmpeg"
	"newsroom-video/intake"
	"newsroom-video/media"
	"newsroom-video/transcode"
)

type fakeRunner struct {
	err error
}

func (r *fakeRunner) Start(inputPath, outputPath string, spec transcode.Spec) <-chan error {
	ch := make(chan error, 1)
	if r.err == nil {
		if err := os.WriteFile(outputPath, []byte("encoded bytes"), 0600); err != nil {
			ch <- err
			return ch
		}
	}
	ch <- r.err
	return ch
}

// newTestEnv wires up the handler package the way main() does, against a
// throwaway sqlite database and data dir.
func newTestEnv(t *testing.T, mode string) *auth.JWTVerifier {
	t.Helper()
	t.Setenv("NEWSROOM_DATA_DIR", t.TempDir())
	t.Setenv("NEWSROOM_FFPROBE", "false")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.User{}, &media.Asset{}, &media.Tag{}, &media.Timecode{}, &transcode.Job{}))

	logger := logrus.New()
	require.NoError(t, database.Init(db, logger))
	require.NoError(t, auth.Init(logger))
	require.NoError(t, intake.Init(logger))
	require.NoError(t, ffmpeg.Init(logger))

	verifier := auth.NewJWTVerifier([]byte("test-secret"))
	require.NoError(t, Init(logger, intake.New(mode, &fakeRunner{}), verifier))
	return verifier
}

// storedAsset creates an asset record whose backing file holds `content`.
func storedAsset(t *testing.T, originalFilename string, content []byte) media.Asset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stored.mp4")
	require.NoError(t, os.WriteFile(path, content, 0600))

	asset := media.Asset{
		StoredFilename:   "stored.mp4",
		StoragePath:      path,
		OriginalFilename: originalFilename,
	}
	require.NoError(t, media.Create(&asset))
	return asset
}

// orphanAsset creates an asset record whose backing file does not exist.
func orphanAsset(t *testing.T, originalFilename string) media.Asset {
	t.Helper()
	asset := media.Asset{
		StoredFilename:   "gone.mp4",
		StoragePath:      filepath.Join(t.TempDir(), "gone.mp4"),
		OriginalFilename: originalFilename,
	}
	require.NoError(t, media.Create(&asset))
	return asset
}
