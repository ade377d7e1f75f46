package db

import "time"

// FooterSettings is the single-row footer aggregate served by /api/footer-settings.
type FooterSettings struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	PracticeName string    `gorm:"size:120" json:"practiceName"`
	Description  string    `gorm:"type:text" json:"description"`
	CRP          string    `gorm:"size:40" json:"crp"`
	Phone        string    `gorm:"size:40" json:"phone"`
	Email        string    `gorm:"size:120" json:"email"`
	Address      string    `gorm:"size:255" json:"address"`
	Instagram    string    `gorm:"size:255" json:"instagram"`
	WhatsApp     string    `gorm:"size:40" json:"whatsapp"`
	LinkedIn     string    `gorm:"size:255" json:"linkedin"`
	Copyright    string    `gorm:"size:255" json:"copyright"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName 返回自定义表名
func (FooterSettings) TableName() string {
	return "footer_settings"
}
