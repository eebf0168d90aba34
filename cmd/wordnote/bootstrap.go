package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gorm.io/gorm"

	"wordnote/internal/config"
	"wordnote/internal/repository"
)

// loadConfig は設定を読み込み、それに合わせたロガーをデフォルトにします
func loadConfig() (*config.Config, *slog.Logger, error) {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig(configDir); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg := config.Cfg

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	return &cfg, logger, nil
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラを使います
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// openDB は接続して、閉じる関数も返します
func openDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, func(), error) {
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeDB := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
			return
		}
		logger.Info("Database connection closed.")
	}
	return db, closeDB, nil
}
