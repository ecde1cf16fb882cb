package provider

import (
	"time"
)

type Provider struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Website   *string   `gorm:"size:512;column:website" json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Provider) TableName() string {
	return "providers"
}
