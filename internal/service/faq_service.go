package service

import (
	"fmt"
	"strings"

	"github.com/psisite/internal/db"
	"gorm.io/gorm"
)

// FAQService manages question/answer pairs.
type FAQService struct {
	db *gorm.DB
}

// NewFAQService 构造 FAQService
func NewFAQService(gdb *gorm.DB) *FAQService {
	return &FAQService{db: gdb}
}

// FAQInput carries the editable fields of an FAQ item.
type FAQInput struct {
	Question string
	Answer   string
	Sort     *int
	Visible  *bool
}

// List returns FAQ items ordered by sort.
func (s *FAQService) List(includeHidden bool) ([]db.FAQItem, error) {
	query := s.db.Model(&db.FAQItem{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var items []db.FAQItem
	if err := query.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list faq items: %w", err)
	}
	return items, nil
}

// Create appends a new FAQ item.
func (s *FAQService) Create(input FAQInput) (*db.FAQItem, error) {
	if err := validateFAQInput(input); err != nil {
		return nil, err
	}
	sortValue, err := resolveSort(s.db, &db.FAQItem{}, "sort", input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.FAQItem{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
		Sort:     sortValue,
		Visible:  boolOr(input.Visible, true),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create faq item: %w", err)
	}
	return &item, nil
}

// Update overwrites an FAQ item.
func (s *FAQService) Update(id uint, input FAQInput) (*db.FAQItem, error) {
	if err := validateFAQInput(input); err != nil {
		return nil, err
	}

	var item db.FAQItem
	if err := findByID(s.db, &item, id); err != nil {
		return nil, err
	}
	item.Question = strings.TrimSpace(input.Question)
	item.Answer = strings.TrimSpace(input.Answer)
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	item.Visible = boolOr(input.Visible, item.Visible)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update faq item: %w", err)
	}
	return &item, nil
}

// Delete removes an FAQ item.
func (s *FAQService) Delete(id uint) error {
	return deleteByID(s.db, &db.FAQItem{}, id)
}

// Reorder assigns sort values in the given order.
func (s *FAQService) Reorder(ids []uint) error {
	return reorder(s.db, &db.FAQItem{}, "sort", ids)
}

func validateFAQInput(input FAQInput) error {
	if strings.TrimSpace(input.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrItemInvalid)
	}
	if strings.TrimSpace(input.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrItemInvalid)
	}
	return nil
}
