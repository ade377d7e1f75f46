package service

import (
	"fmt"
	"strings"

	"github.com/psisite/internal/db"
	"gorm.io/gorm"
)

// TestimonialService manages the testimonials shown on the public page.
type TestimonialService struct {
	db *gorm.DB
}

// NewTestimonialService 构造 TestimonialService
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// TestimonialInput carries the editable fields. Rating 0 means "keep default" (5).
type TestimonialInput struct {
	Name    string
	Role    string
	Content string
	Rating  int
	Sort    *int
	Visible *bool
}

// List returns testimonials ordered by sort.
func (s *TestimonialService) List(includeHidden bool) ([]db.Testimonial, error) {
	query := s.db.Model(&db.Testimonial{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var items []db.Testimonial
	if err := query.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// Create inserts a testimonial at the end of the list unless Sort is given.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	rating, err := validateTestimonialInput(input)
	if err != nil {
		return nil, err
	}
	sortValue, err := resolveSort(s.db, &db.Testimonial{}, "sort", input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.Testimonial{
		Name:    strings.TrimSpace(input.Name),
		Role:    strings.TrimSpace(input.Role),
		Content: strings.TrimSpace(input.Content),
		Rating:  rating,
		Sort:    sortValue,
		Visible: boolOr(input.Visible, true),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return &item, nil
}

// Update overwrites a testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	rating, err := validateTestimonialInput(input)
	if err != nil {
		return nil, err
	}

	var item db.Testimonial
	if err := findByID(s.db, &item, id); err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	item.Role = strings.TrimSpace(input.Role)
	item.Content = strings.TrimSpace(input.Content)
	item.Rating = rating
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	item.Visible = boolOr(input.Visible, item.Visible)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return &item, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(id uint) error {
	return deleteByID(s.db, &db.Testimonial{}, id)
}

// Reorder assigns sort values in the given order.
func (s *TestimonialService) Reorder(ids []uint) error {
	return reorder(s.db, &db.Testimonial{}, "sort", ids)
}

func validateTestimonialInput(input TestimonialInput) (int, error) {
	if strings.TrimSpace(input.Name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrItemInvalid)
	}
	if strings.TrimSpace(input.Content) == "" {
		return 0, fmt.Errorf("%w: content is required", ErrItemInvalid)
	}
	if input.Rating == 0 {
		return 5, nil
	}
	if input.Rating < 1 || input.Rating > 5 {
		return 0, fmt.Errorf("%w: rating must be between 1 and 5", ErrItemInvalid)
	}
	return input.Rating, nil
}
