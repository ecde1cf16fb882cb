package datapoint

import (
	"time"

	"pricepoint-api/internal/provider"
)

type DataPoint struct {
	ID         int               `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID int               `gorm:"not null;index;column:provider_id" json:"provider_id"`
	Provider   provider.Provider `gorm:"foreignKey:ProviderID" json:"provider"`
	AssetClass string            `gorm:"size:100;not null;column:asset_class" json:"asset_class"`
	Quarter    string            `gorm:"size:20;not null;column:quarter" json:"quarter"`
	MinPrice   float64           `gorm:"not null;column:min_price" json:"min_price"`
	MaxPrice   float64           `gorm:"not null;column:max_price" json:"max_price"`
	// Date is stamped by the server at creation and never updated.
	Date time.Time `gorm:"not null;index;column:date" json:"date"`
}

func (DataPoint) TableName() string {
	return "data_points"
}

// DataPointInput is the draft shape submitted by the form. Provider
// carries the provider id as the string the form field holds; prices are
// pointers so a missing field can be told apart from an explicit zero.
type DataPointInput struct {
	Provider   string   `json:"provider"`
	AssetClass string   `json:"asset_class"`
	Quarter    string   `json:"quarter"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
}

// DataPointFilters narrows a fetched list. Zero-valued fields impose no
// constraint; all set fields must match at once.
type DataPointFilters struct {
	AssetClass string `form:"asset_class" json:"asset_class"`
	Quarter    string `form:"quarter" json:"quarter"`
	Provider   string `form:"provider" json:"provider"`
}
