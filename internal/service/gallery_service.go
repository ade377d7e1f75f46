package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/psisite/internal/db"
	"gorm.io/gorm"
)

// GalleryService handles gallery CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating or updating a gallery image.
type GalleryInput struct {
	Title       string
	Description string
	ImageURL    string
	SortOrder   *int
	Visible     *bool
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns gallery images ordered by priority.
func (s *GalleryService) List(includeHidden bool) ([]db.GalleryImage, error) {
	query := s.db.Model(&db.GalleryImage{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var items []db.GalleryImage
	if err := query.Order("sort_order asc").Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return items, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}
	sortOrder, err := resolveSort(s.db, &db.GalleryImage{}, "sort_order", input.SortOrder)
	if err != nil {
		return nil, err
	}

	item := db.GalleryImage{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   sortOrder,
		Visible:     boolOr(input.Visible, true),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return &item, nil
}

// Update modifies an existing gallery image.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	var item db.GalleryImage
	if err := findByID(s.db, &item, id); err != nil {
		return nil, err
	}
	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	item.Visible = boolOr(input.Visible, item.Visible)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	return &item, nil
}

// Delete removes a gallery image.
func (s *GalleryService) Delete(id uint) error {
	return deleteByID(s.db, &db.GalleryImage{}, id)
}

// Reorder assigns sort_order values in the given order.
func (s *GalleryService) Reorder(ids []uint) error {
	return reorder(s.db, &db.GalleryImage{}, "sort_order", ids)
}

func validateGalleryInput(input GalleryInput) error {
	raw := strings.TrimSpace(input.ImageURL)
	if raw == "" {
		return fmt.Errorf("%w: image url is required", ErrItemInvalid)
	}
	if strings.HasPrefix(raw, "/") {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: image url must be http(s) or site relative", ErrItemInvalid)
	}
	return nil
}
