package service

import (
	"fmt"
	"strings"

	"github.com/psisite/internal/db"
	"gorm.io/gorm"
)

// OfferingService 维护服务区块中的卡片
type OfferingService struct {
	db *gorm.DB
}

// NewOfferingService 构造 OfferingService
func NewOfferingService(gdb *gorm.DB) *OfferingService {
	return &OfferingService{db: gdb}
}

// OfferingInput 描述创建或更新服务卡片时可设置的字段
// Sort/Visible 使用指针判断是否显式传入
type OfferingInput struct {
	Title       string
	Description string
	Icon        string
	Sort        *int
	Visible     *bool
}

// List 返回服务卡片，按排序值升序；includeHidden 为 false 时过滤隐藏条目
func (s *OfferingService) List(includeHidden bool) ([]db.ServiceOffering, error) {
	query := s.db.Model(&db.ServiceOffering{})
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}
	var items []db.ServiceOffering
	if err := query.Order("sort ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list service offerings: %w", err)
	}
	return items, nil
}

// Create 新建服务卡片，未指定排序时追加到末尾
func (s *OfferingService) Create(input OfferingInput) (*db.ServiceOffering, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrItemInvalid)
	}
	sortValue, err := resolveSort(s.db, &db.ServiceOffering{}, "sort", input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.ServiceOffering{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		Sort:        sortValue,
		Visible:     boolOr(input.Visible, true),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create service offering: %w", err)
	}
	return &item, nil
}

// Update 更新指定服务卡片
func (s *OfferingService) Update(id uint, input OfferingInput) (*db.ServiceOffering, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrItemInvalid)
	}

	var item db.ServiceOffering
	if err := findByID(s.db, &item, id); err != nil {
		return nil, err
	}
	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Icon = strings.TrimSpace(input.Icon)
	if input.Sort != nil {
		item.Sort = *input.Sort
	}
	item.Visible = boolOr(input.Visible, item.Visible)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update service offering: %w", err)
	}
	return &item, nil
}

// Delete 删除指定服务卡片
func (s *OfferingService) Delete(id uint) error {
	return deleteByID(s.db, &db.ServiceOffering{}, id)
}

// Reorder 按给定顺序重排
func (s *OfferingService) Reorder(ids []uint) error {
	return reorder(s.db, &db.ServiceOffering{}, "sort", ids)
}
