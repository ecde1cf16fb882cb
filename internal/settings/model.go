package settings

import (
	"time"

	"gorm.io/datatypes"
)

type Setting struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string         `gorm:"size:100;not null;uniqueIndex;column:key" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
