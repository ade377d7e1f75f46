package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init opens the database for the given driver, runs migrations and stores the
// handle in DB. An empty sqlite target falls back to psisite.db.
func Init(driver, target string) error {
	gdb, err := Open(driver, target, &gorm.Config{})
	if err != nil {
		return err
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open connects to sqlite (file path) or mysql (DSN) without migrating.
func Open(driver, target string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}

	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql":
		dsn := strings.TrimSpace(target)
		if dsn == "" {
			return nil, errors.New("mysql driver requires a DSN")
		}
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		path := strings.TrimSpace(target)
		if path == "" {
			path = "psisite.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		return gorm.Open(sqlite.Open(path), cfg)
	}
}

// Migrate 自动迁移全部模型。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&User{},
		&ConfigEntry{},
		&ServiceOffering{},
		&Testimonial{},
		&FAQItem{},
		&GalleryImage{},
		&FooterSettings{},
		&SiteAsset{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
