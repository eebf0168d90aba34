package main

import (
	"os"

	"github.com/spf13/cobra"

	"wordnote/internal/config"
)

var configDir string

func main() {
	rootCmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "単語帳 API サーバー",
		Version:      config.AppVersion,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config", "./configs", "config.yaml を探すディレクトリ")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(remindCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
