package repository_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wordnote/internal/model"
	"wordnote/internal/repository"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestDB はテストごとに独立したインメモリ SQLite を用意します
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(dsn, testLogger)
	require.NoError(t, err, "Failed to open sqlite test DB")
	require.NoError(t, repository.Migrate(db), "Failed to migrate sqlite test DB")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newWord(tenantID uuid.UUID, term string, createdAt time.Time) *model.Word {
	return &model.Word{
		WordID:       uuid.NewString(),
		TenantID:     tenantID,
		Term:         term,
		PartOfSpeech: "noun",
		Phonetic:     "/" + term + "/",
		Meaning:      term + " の意味",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}
