package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnote/internal/model"
	"wordnote/internal/repository"
)

func TestGormWordRepository_UpsertAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()
	tenantID := uuid.New()
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	older := newWord(tenantID, "apple", base)
	newer := newWord(tenantID, "banana", base.Add(time.Hour))
	other := newWord(uuid.New(), "cherry", base)
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{older, newer, other}))

	words, err := repo.FindByTenant(ctx, db, tenantID)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "banana", words[0].Term, "新しい順に並ぶこと")
	assert.Equal(t, "apple", words[1].Term)

	// 同じIDで上書きされ、remind=false へ戻せること
	older.Meaning = "りんご"
	older.Remind = true
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{older}))
	got, err := repo.FindByID(ctx, db, tenantID, older.WordID)
	require.NoError(t, err)
	assert.Equal(t, "りんご", got.Meaning)
	assert.True(t, got.Remind)

	older.Remind = false
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{older}))
	got, err = repo.FindByID(ctx, db, tenantID, older.WordID)
	require.NoError(t, err)
	assert.False(t, got.Remind)

	remind, err := repo.FindRemindByTenant(ctx, db, tenantID)
	require.NoError(t, err)
	assert.Empty(t, remind)
}

func TestGormWordRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()

	_, err := repo.FindByID(context.Background(), db, uuid.New(), uuid.NewString())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGormWordRepository_FindByID_OtherTenant(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()
	w := newWord(uuid.New(), "apple", time.Now())
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{w}))

	_, err := repo.FindByID(ctx, db, uuid.New(), w.WordID)
	assert.ErrorIs(t, err, model.ErrNotFound, "他テナントの単語は見えないこと")
}

func TestGormWordRepository_DeleteByIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()
	tenantID := uuid.New()
	now := time.Now()
	a := newWord(tenantID, "a", now)
	b := newWord(tenantID, "b", now.Add(time.Second))
	c := newWord(tenantID, "c", now.Add(2*time.Second))
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{a, b, c}))

	deleted, err := repo.DeleteByIDs(ctx, db, tenantID, []string{a.WordID, c.WordID, uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted, "存在しないIDは無視されること")

	words, err := repo.FindByTenant(ctx, db, tenantID)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, b.WordID, words[0].WordID)

	deleted, err = repo.DeleteByIDs(ctx, db, tenantID, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestGormWordRepository_CheckTermExists(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormWordRepository()
	tenantID := uuid.New()
	w := newWord(tenantID, "apple", time.Now())
	require.NoError(t, repo.Upsert(ctx, db, []*model.Word{w}))

	tests := []struct {
		name      string
		tenantID  uuid.UUID
		term      string
		excludeID *string
		want      bool
	}{
		{name: "同じ単語が存在する", tenantID: tenantID, term: "apple", want: true},
		{name: "大文字小文字は区別する", tenantID: tenantID, term: "Apple", want: false},
		{name: "自分自身は除外できる", tenantID: tenantID, term: "apple", excludeID: &w.WordID, want: false},
		{name: "他テナントは対象外", tenantID: uuid.New(), term: "apple", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CheckTermExists(ctx, db, tt.tenantID, tt.term, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
