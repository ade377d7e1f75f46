package db

import (
	"time"

	"gorm.io/datatypes"
)

// ConfigEntry stores one editable content unit as a JSON value under a unique key.
type ConfigEntry struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	Key       string         `gorm:"column:config_key;size:100;uniqueIndex;not null" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName 自定义表名以保持命名一致。
func (ConfigEntry) TableName() string {
	return "config_entries"
}
