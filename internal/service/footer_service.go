package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/psisite/internal/db"
	"gorm.io/gorm"
)

// ErrFooterInvalid 在页脚信息校验失败时返回
var ErrFooterInvalid = errors.New("invalid footer settings")

// FooterService 维护单行的页脚配置
type FooterService struct {
	db *gorm.DB
}

// NewFooterService 构造 FooterService
func NewFooterService(gdb *gorm.DB) *FooterService {
	return &FooterService{db: gdb}
}

// FooterInput 页脚可编辑字段
type FooterInput struct {
	PracticeName string `json:"practiceName" yaml:"practiceName,omitempty"`
	Description  string `json:"description" yaml:"description,omitempty"`
	CRP          string `json:"crp" yaml:"crp,omitempty"`
	Phone        string `json:"phone" yaml:"phone,omitempty"`
	Email        string `json:"email" yaml:"email,omitempty"`
	Address      string `json:"address" yaml:"address,omitempty"`
	Instagram    string `json:"instagram" yaml:"instagram,omitempty"`
	WhatsApp     string `json:"whatsapp" yaml:"whatsapp,omitempty"`
	LinkedIn     string `json:"linkedin" yaml:"linkedin,omitempty"`
	Copyright    string `json:"copyright" yaml:"copyright,omitempty"`
}

// DefaultFooter 返回尚未保存时展示的页脚
func DefaultFooter() db.FooterSettings {
	return db.FooterSettings{
		PracticeName: "Consultório de Psicologia",
		Description:  "Atendimento psicológico presencial e online.",
		Copyright:    "Todos os direitos reservados.",
	}
}

// Get 返回页脚配置，表为空时返回默认值（不写库）
func (s *FooterService) Get() (db.FooterSettings, error) {
	var settings db.FooterSettings
	err := s.db.Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultFooter(), nil
	}
	if err != nil {
		return db.FooterSettings{}, fmt.Errorf("get footer settings: %w", err)
	}
	return settings, nil
}

// Update 覆盖唯一一行页脚配置，不存在则创建
func (s *FooterService) Update(input FooterInput) (db.FooterSettings, error) {
	input = normalizeFooterInput(input)
	if input.PracticeName == "" {
		return db.FooterSettings{}, fmt.Errorf("%w: practice name is required", ErrFooterInvalid)
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return db.FooterSettings{}, fmt.Errorf("%w: email is invalid", ErrFooterInvalid)
		}
	}

	var settings db.FooterSettings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").First(&settings).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		settings.PracticeName = input.PracticeName
		settings.Description = input.Description
		settings.CRP = input.CRP
		settings.Phone = input.Phone
		settings.Email = input.Email
		settings.Address = input.Address
		settings.Instagram = input.Instagram
		settings.WhatsApp = input.WhatsApp
		settings.LinkedIn = input.LinkedIn
		settings.Copyright = input.Copyright
		return tx.Save(&settings).Error
	})
	if err != nil {
		return db.FooterSettings{}, fmt.Errorf("update footer settings: %w", err)
	}
	return settings, nil
}

// FooterInputFrom 将已保存的配置转换为可编辑输入
func FooterInputFrom(settings db.FooterSettings) FooterInput {
	return FooterInput{
		PracticeName: settings.PracticeName,
		Description:  settings.Description,
		CRP:          settings.CRP,
		Phone:        settings.Phone,
		Email:        settings.Email,
		Address:      settings.Address,
		Instagram:    settings.Instagram,
		WhatsApp:     settings.WhatsApp,
		LinkedIn:     settings.LinkedIn,
		Copyright:    settings.Copyright,
	}
}

func normalizeFooterInput(input FooterInput) FooterInput {
	for _, field := range []*string{
		&input.PracticeName, &input.Description, &input.CRP, &input.Phone, &input.Email,
		&input.Address, &input.Instagram, &input.WhatsApp, &input.LinkedIn, &input.Copyright,
	} {
		*field = strings.TrimSpace(*field)
	}
	return input
}
