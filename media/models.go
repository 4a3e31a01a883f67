package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newsroom-video/auth"
)

// Asset is one transcoded piece of footage plus its metadata. A record is
// only ever created after the encode finished, so StoragePath points at a
// complete file unless someone removed it out from under us; readers treat
// that as not-found.
type Asset struct {
	ID               string `gorm:"primaryKey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	StoredFilename   string
	StoragePath      string
	OriginalFilename string
	UploaderID       uint
	Uploader         auth.User `gorm:"foreignKey:UploaderID"`
	Tags             []Tag
	Timecodes        []Timecode

	// probed after the encode, zero when probing failed
	Size         int64
	DurationSecs float64
	Width        uint
	Height       uint
}

// Tag links an asset to a newsroom event, e.g. "election" or "fire".
type Tag struct {
	ID      uint `gorm:"primarykey"`
	AssetID string
	Name    string
}

// Timecode is an editor's annotation at an offset into the footage.
// Rows come back in insertion order, not offset order.
type Timecode struct {
	ID          uint    `gorm:"primarykey" json:"-"`
	AssetID     string  `json:"-"`
	Description string  `json:"description"`
	Seconds     float64 `json:"timestamp"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

// TagNames flattens the tag rows for API responses.
func (a *Asset) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}
	return names
}
