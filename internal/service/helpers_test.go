package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wordnote/internal/model"
	"wordnote/internal/repository"
	"wordnote/internal/store"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestDB はテストごとに独立したインメモリ SQLite を用意します
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(dsn, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fakeWriter は書き込みを記録し、err を結果として返す WordWriter
type fakeWriter struct {
	mu      sync.Mutex
	err     error
	written []model.Word
	deleted []string
}

func (w *fakeWriter) Write(_ context.Context, word model.Word) *store.Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = append(w.written, word)
	return store.Completed(w.err)
}

func (w *fakeWriter) Delete(_ context.Context, _ uuid.UUID, wordIDs []string) *store.Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deleted = append(w.deleted, wordIDs...)
	return store.Completed(w.err)
}
