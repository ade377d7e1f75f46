package main

import (
	"fmt"
	"os"

	"github.com/psisite/internal/config"
	"github.com/psisite/internal/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "psisite",
		Short:        "Landing page and admin panel for a psychology practice",
		SilenceUsage: true,
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newContentCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "psisite %s (commit: %s)\n", Version, Commit)
		},
	}
}

// openDatabase 按配置初始化数据库并返回全局连接
func openDatabase(cfg config.AppConfig) (*gorm.DB, error) {
	if err := db.Init(cfg.DatabaseDriver, cfg.DatabaseTarget()); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return db.DB, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
