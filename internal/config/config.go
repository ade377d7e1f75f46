package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// AppConfig 汇总运行站点所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabaseDriver string
	DatabasePath   string
	DatabaseDSN    string
	SessionSecret  string
	GinMode        string
	UploadDir      string
	UploadURLPath  string
	AdminUserName  string
	AdminPassword  string
	SiteBaseURL    string
}

// Load 从环境变量（以及可选的 .env 文件）读取配置，并为缺失项提供默认值。
func Load() AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] ignoring .env: %v", err)
	}

	port := envOr("PORT", "8080")

	listenAddr := envOr("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	driver := strings.ToLower(envOr("DATABASE_DRIVER", DriverSQLite))
	if driver != DriverMySQL {
		driver = DriverSQLite
	}

	uploadURLPath := envOr("UPLOAD_URL_PATH", "/uploads")
	if !strings.HasPrefix(uploadURLPath, "/") {
		uploadURLPath = "/" + uploadURLPath
	}

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabaseDriver: driver,
		DatabasePath:   envOr("DATABASE_PATH", "psisite.db"),
		DatabaseDSN:    envOr("DATABASE_DSN", ""),
		SessionSecret:  envOr("SESSION_SECRET", "psisite-dev-secret"),
		GinMode:        envOr("GIN_MODE", "release"),
		UploadDir:      envOr("UPLOAD_DIR", "data/uploads"),
		UploadURLPath:  strings.TrimRight(uploadURLPath, "/"),
		AdminUserName:  envOr("ADMIN_USERNAME", ""),
		AdminPassword:  envOr("ADMIN_PASSWORD", ""),
		SiteBaseURL:    strings.TrimRight(envOr("SITE_BASE_URL", "http://localhost:8080"), "/"),
	}
}

// DatabaseTarget 返回当前驱动应使用的连接串：sqlite 用文件路径，mysql 用 DSN。
func (c AppConfig) DatabaseTarget() string {
	if c.DatabaseDriver == DriverMySQL {
		return c.DatabaseDSN
	}
	return c.DatabasePath
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
