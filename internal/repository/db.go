package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wordnote/internal/model"
)

const sqlitePrefix = "sqlite://"

// NewDB は databaseURL に応じて PostgreSQL か SQLite (sqlite://path) に接続します
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("repository.NewDB: database url is empty")
	}

	// APP_ENV=dev のときだけ SQL をすべて出す
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	var dialector gorm.Dialector
	isSQLite := strings.HasPrefix(databaseURL, sqlitePrefix)
	if isSQLite {
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, sqlitePrefix))
	} else {
		dialector = postgres.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if isSQLite {
		// SQLite は書き込みが1本なのでコネクションも1本にする
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.Bool("sqlite", isSQLite))
	return db, nil
}

// Migrate はテーブルを作成・更新します
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Tenant{},
		&model.Word{},
		&model.LearningProgress{},
		&model.ReminderSettings{},
	); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

// isDuplicateKey は一意制約違反かどうかを判定します。
// TranslateError が効いていれば gorm.ErrDuplicatedKey、効かない経路では PostgreSQL の 23505 を見る
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
