package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wordnote/internal/handlers"
	"wordnote/internal/listview"
	"wordnote/internal/mailer"
	"wordnote/internal/reminder"
	"wordnote/internal/repository"
	"wordnote/internal/service"
	"wordnote/internal/store"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		autoMigrate bool
		noScheduler bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "API サーバーを起動します",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			logger.Info("Application starting...")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, closeDB, err := openDB(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()
			if autoMigrate {
				if err := repository.Migrate(db); err != nil {
					return err
				}
			}

			// --- Dependency Injection ---
			tenantRepo := repository.NewGormTenantRepository()
			wordRepo := repository.NewGormWordRepository()
			progressRepo := repository.NewGormProgressRepository()
			reminderRepo := repository.NewGormReminderRepository()

			pool := store.NewWorkerPool(cfg.App.Workers, cfg.App.Workers*16)
			pool.Start(context.WithoutCancel(ctx))
			mirror := store.NewRemoteMirror(cfg.Mirror.URL, cfg.Mirror.Token, cfg.Mirror.Timeout)
			wordStore := store.NewWordStore(db, wordRepo, progressRepo, mirror, pool, logger)
			registry := listview.NewRegistry(wordStore, logger, cfg.App.SessionGrace, listview.WithUndoWindow(cfg.App.UndoWindow))

			m, err := mailer.New(ctx, cfg)
			if err != nil {
				return err
			}

			authService := service.NewAuthService(db, tenantRepo, m, cfg)
			wordService := service.NewWordService(db, wordRepo, wordStore)
			listService := service.NewListService(registry)
			flashcardService := service.NewFlashcardService(db, wordRepo, progressRepo, cfg)
			reminderService := service.NewReminderService(db, reminderRepo)

			router := handlers.NewRouter(cfg, logger, handlers.Handlers{
				Auth:      handlers.NewAuthHandler(authService),
				Word:      handlers.NewWordHandler(wordService),
				List:      handlers.NewListHandler(listService),
				Flashcard: handlers.NewFlashcardHandler(flashcardService),
				Reminder:  handlers.NewReminderHandler(reminderService),
				Health:    handlers.NewHealthHandler(db),
			})

			// WriteTimeout は SSE を切ってしまうので付けない
			server := &http.Server{
				Addr:              cfg.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				IdleTimeout:       120 * time.Second,
				BaseContext:       func(net.Listener) context.Context { return ctx },
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("Server listening", slog.String("port", cfg.Server.Port))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			if !noScheduler {
				scheduler := reminder.NewScheduler(db, reminderRepo, wordRepo, tenantRepo, m, logger)
				g.Go(func() error {
					return scheduler.Run(gctx, cfg.Reminder.TickInterval)
				})
			}
			g.Go(func() error {
				<-gctx.Done()
				logger.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error("Server forced to shutdown", slog.Any("error", err))
				}
				// 一覧セッションを閉じてから書き込みキューを流し切る
				registry.Close()
				wordStore.Close()
				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error("Server stopped with error", slog.Any("error", err))
				return err
			}
			logger.Info("Server exiting")
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoMigrate, "migrate", true, "起動時にマイグレーションを実行する")
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "リマインダーの定期送信を起動しない")
	return cmd
}
