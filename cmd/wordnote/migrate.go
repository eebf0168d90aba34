package main

import (
	"github.com/spf13/cobra"

	"wordnote/internal/repository"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "テーブルを作成・更新します",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			db, closeDB, err := openDB(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := repository.Migrate(db); err != nil {
				return err
			}
			logger.Info("Migration completed")
			return nil
		},
	}
}
