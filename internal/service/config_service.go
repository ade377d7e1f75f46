package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrConfigKeyMissing 表示未提供配置键。
	ErrConfigKeyMissing = errors.New("config key is required")
	// ErrConfigKeyInvalid 表示配置键格式不合法。
	ErrConfigKeyInvalid = errors.New("config key is invalid")
	// ErrConfigValueInvalid 表示配置值无法通过校验。
	ErrConfigValueInvalid = errors.New("config value is invalid")
	// ErrConfigNotFound 表示配置键不存在。
	ErrConfigNotFound = errors.New("config entry not found")
)

var configKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,99}$`)

// ConfigService 读写键值配置表。每次写入都会整体覆盖该键的值。
type ConfigService struct {
	db *gorm.DB
}

// NewConfigService 构造 ConfigService。
func NewConfigService(gdb *gorm.DB) *ConfigService {
	return &ConfigService{db: gdb}
}

// List returns every config entry ordered by key.
func (s *ConfigService) List() ([]db.ConfigEntry, error) {
	var entries []db.ConfigEntry
	if err := s.db.Order("config_key ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list config entries: %w", err)
	}
	return entries, nil
}

// Get returns the entry stored under key.
func (s *ConfigService) Get(key string) (*db.ConfigEntry, error) {
	var entry db.ConfigEntry
	if err := s.db.Where("config_key = ?", strings.TrimSpace(key)).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("get config entry: %w", err)
	}
	return &entry, nil
}

// Save validates raw and upserts it under key. Values for known keys are
// decoded into their typed form, normalised and re-encoded; other keys only
// need to hold valid JSON.
func (s *ConfigService) Save(key string, raw json.RawMessage) (db.ConfigEntry, error) {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return db.ConfigEntry{}, ErrConfigKeyMissing
	}
	if !configKeyPattern.MatchString(trimmedKey) {
		return db.ConfigEntry{}, fmt.Errorf("%w: %q", ErrConfigKeyInvalid, trimmedKey)
	}

	var stored []byte
	if content.Known(trimmedKey) {
		value, err := content.Decode(trimmedKey, raw)
		if err != nil {
			return db.ConfigEntry{}, fmt.Errorf("%w: %w", ErrConfigValueInvalid, err)
		}
		if stored, err = content.Encode(value); err != nil {
			return db.ConfigEntry{}, fmt.Errorf("encode %s: %w", trimmedKey, err)
		}
	} else {
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, raw); err != nil || compacted.Len() == 0 {
			return db.ConfigEntry{}, fmt.Errorf("%w: value must be valid JSON", ErrConfigValueInvalid)
		}
		stored = compacted.Bytes()
	}

	return s.upsert(trimmedKey, stored)
}

// SaveValue stores an already typed value, running the same checks as Save.
func (s *ConfigService) SaveValue(key string, value content.Value) (db.ConfigEntry, error) {
	raw, err := content.Encode(value)
	if err != nil {
		return db.ConfigEntry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Save(key, raw)
}

func (s *ConfigService) upsert(key string, value []byte) (db.ConfigEntry, error) {
	entry := db.ConfigEntry{Key: key, Value: datatypes.JSON(value)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      datatypes.JSON(value),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return db.ConfigEntry{}, fmt.Errorf("upsert config %s: %w", key, err)
	}

	stored, err := s.Get(key)
	if err != nil {
		return db.ConfigEntry{}, err
	}
	return *stored, nil
}
