package db

import "gorm.io/gorm"

const (
	// AssetKindFavicon 表示站点图标。
	AssetKindFavicon = "favicon"
)

// SiteAsset records a site-wide file managed outside the config store.
type SiteAsset struct {
	gorm.Model
	Kind     string `gorm:"size:40;uniqueIndex;not null"`
	FileName string `gorm:"size:255;not null"`
	URL      string `gorm:"size:500;not null"`
	MimeType string `gorm:"size:80"`
	Size     int64
}

// TableName 返回自定义表名
func (SiteAsset) TableName() string {
	return "site_assets"
}
