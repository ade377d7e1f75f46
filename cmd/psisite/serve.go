package main

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/config"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/router"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to LISTEN_ADDR or :PORT)")
	return cmd
}

func runServe(addr string) {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	created, err := db.EnsureUser(gdb, cfg.AdminUserName, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}
	if created {
		log.Printf("[auth] created admin user %q", cfg.AdminUserName)
	}

	r := router.SetupRouter(router.Options{
		DB:            gdb,
		SessionSecret: cfg.SessionSecret,
		UploadDir:     cfg.UploadDir,
		UploadURLPath: cfg.UploadURLPath,
		SecureCookies: strings.HasPrefix(cfg.SiteBaseURL, "https://"),
	})

	listen := strings.TrimSpace(addr)
	if listen == "" {
		listen = cfg.ListenAddr
	}
	log.Printf("[server] listening on %s", listen)
	if err := r.Run(listen); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
