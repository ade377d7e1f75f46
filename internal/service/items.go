package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrItemNotFound 在指定条目不存在时返回
	ErrItemNotFound = errors.New("content item not found")
	// ErrItemInvalid 在输入数据不完整时返回
	ErrItemInvalid = errors.New("invalid content item input")
)

// reorder 按给定顺序把 sortColumn 依次赋值 0,1,2...，未包含的条目保持原排序
func reorder(gdb *gorm.DB, model interface{}, sortColumn string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return gdb.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(model).Where("id = ?", id).Update(sortColumn, index).Error; err != nil {
				return fmt.Errorf("reorder: %w", err)
			}
		}
		return nil
	})
}

// nextSort 返回追加到末尾时应使用的排序值
func nextSort(gdb *gorm.DB, model interface{}, sortColumn string) (int, error) {
	var maxSort int
	if err := gdb.Model(model).Select("COALESCE(MAX(" + sortColumn + "), -1)").Scan(&maxSort).Error; err != nil {
		return 0, fmt.Errorf("resolve sort: %w", err)
	}
	return maxSort + 1, nil
}

func resolveSort(gdb *gorm.DB, model interface{}, sortColumn string, sortPtr *int) (int, error) {
	if sortPtr != nil {
		return *sortPtr, nil
	}
	return nextSort(gdb, model, sortColumn)
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func findByID(gdb *gorm.DB, dst interface{}, id uint) error {
	if err := gdb.First(dst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("find item: %w", err)
	}
	return nil
}

func deleteByID(gdb *gorm.DB, model interface{}, id uint) error {
	result := gdb.Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
