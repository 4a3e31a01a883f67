package media

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-video/database"
)

var ErrNotFound = errors.New("asset not found")

// Create inserts the asset and its tag rows in one transaction: either the
// whole record exists afterwards or none of it does.
func Create(asset *Asset) error {
	// the uploader row belongs to the auth collaborator, never write it here
	return database.Get().Omit("Uploader").Create(asset).Error
}

func Find(id string) (Asset, error) {
	var asset Asset
	err := database.Get().
		Preload("Tags").
		Preload("Timecodes").
		Preload("Uploader").
		First(&asset, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Asset{}, ErrNotFound
	}
	return asset, err
}

// List returns all assets, or only those carrying `tag` when it is non-empty.
func List(tag string) ([]Asset, error) {
	db := database.Get().Preload("Tags").Preload("Uploader")
	if tag != "" {
		db = db.Joins("JOIN tags ON tags.asset_id = assets.id").
			Where("tags.name = ?", tag)
	}
	var assets []Asset
	err := db.Find(&assets).Error
	return assets, err
}

// AppendTimecode adds an annotation to the asset's sequence. Appends are
// single inserts, so concurrent editors cannot clobber each other.
func AppendTimecode(assetID, description string, seconds float64) error {
	db := database.Get()

	var count int64
	if err := db.Model(&Asset{}).Where("id = ?", assetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return db.Create(&Timecode{
		AssetID:     assetID,
		Description: description,
		Seconds:     seconds,
	}).Error
}

// Timecodes returns the asset's annotations in insertion order.
func Timecodes(assetID string) ([]Timecode, error) {
	db := database.Get()

	var count int64
	if err := db.Model(&Asset{}).Where("id = ?", assetID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var tcs []Timecode
	err := db.Where("asset_id = ?", assetID).Order("id").Find(&tcs).Error
	return tcs, err
}
