package db

import "gorm.io/gorm"

// ServiceOffering is one card in the services section (e.g. "Terapia individual").
type ServiceOffering struct {
	gorm.Model
	Title       string `gorm:"size:120;not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:50"`
	Sort        int    `gorm:"default:0;index"`
	Visible     bool
}

// TableName 返回自定义表名
func (ServiceOffering) TableName() string {
	return "service_offerings"
}

// Testimonial 保存前台展示的来访者评价
// Rating 取值 1-5
type Testimonial struct {
	gorm.Model
	Name    string `gorm:"size:120;not null"`
	Role    string `gorm:"size:120"`
	Content string `gorm:"type:text;not null"`
	Rating  int    `gorm:"default:5"`
	Sort    int    `gorm:"default:0;index"`
	Visible bool
}

// TableName 返回自定义表名
func (Testimonial) TableName() string {
	return "testimonials"
}

// FAQItem is a question/answer pair; Answer holds markdown.
type FAQItem struct {
	gorm.Model
	Question string `gorm:"size:255;not null"`
	Answer   string `gorm:"type:text;not null"`
	Sort     int    `gorm:"default:0;index"`
	Visible  bool
}

// TableName 返回自定义表名
func (FAQItem) TableName() string {
	return "faq_items"
}

// GalleryImage stores a photo shown in the gallery section.
type GalleryImage struct {
	gorm.Model
	Title       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:500;not null"`
	SortOrder   int    `gorm:"default:0;index"`
	Visible     bool
}
