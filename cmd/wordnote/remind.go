package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordnote/internal/mailer"
	"wordnote/internal/reminder"
	"wordnote/internal/repository"
)

// remindCmd はリマインダーを1巡だけ送って終了します。cron から呼ぶ想定
func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "通知時刻を迎えたテナントにリマインダーを1回送ります",
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

			m, err := mailer.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			scheduler := reminder.NewScheduler(db,
				repository.NewGormReminderRepository(),
				repository.NewGormWordRepository(),
				repository.NewGormTenantRepository(),
				m, logger)

			sent, err := scheduler.RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminder(s)\n", sent)
			return err
		},
	}
}
