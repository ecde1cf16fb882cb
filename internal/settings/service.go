package settings

import (
	"encoding/json"
	"errors"

	"github.com/iancoleman/orderedmap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssetClassesKey is the settings row holding the selectable asset-class
// labels. The value is a JSON object; its property names are the labels
// and their order is the display order.
const AssetClassesKey = "asset_classes"

type SettingsServiceAPI interface {
	GetAssetClasses() (*orderedmap.OrderedMap, error)
	SetAssetClasses(labels []string) error
}

type SettingsService struct {
	DB *gorm.DB
}

func (ss *SettingsService) GetAssetClasses() (*orderedmap.OrderedMap, error) {
	var row Setting
	if err := ss.DB.Where("key = ?", AssetClassesKey).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No row yet: empty label set, not an error
			return orderedmap.New(), nil
		}
		return nil, err
	}

	classes := orderedmap.New()
	if err := json.Unmarshal(row.Value, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (ss *SettingsService) SetAssetClasses(labels []string) error {
	classes := orderedmap.New()
	for _, label := range labels {
		classes.Set(label, true)
	}

	b, err := json.Marshal(classes)
	if err != nil {
		return err
	}

	var row Setting
	err = ss.DB.Where("key = ?", AssetClassesKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = Setting{Key: AssetClassesKey, Value: datatypes.JSON(b)}
		return ss.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}

	row.Value = datatypes.JSON(b)
	return ss.DB.Save(&row).Error
}

// SeedDefaults installs the initial asset-class labels on a fresh
// database. Existing settings are left alone.
func (ss *SettingsService) SeedDefaults() error {
	var count int64
	if err := ss.DB.Model(&Setting{}).Where("key = ?", AssetClassesKey).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return ss.SetAssetClasses([]string{"Buyout", "Growth", "Venture"})
}
