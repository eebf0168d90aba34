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

func TestGormProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormProgressRepository()
	tenantID := uuid.New()
	wordID := uuid.NewString()
	due := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	progress := &model.LearningProgress{
		ProgressID:     uuid.New(),
		TenantID:       tenantID,
		WordID:         wordID,
		Level:          model.Level1,
		NextReviewDate: due,
	}
	require.NoError(t, repo.Create(ctx, db, progress))

	dup := *progress
	dup.ProgressID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, db, &dup), model.ErrConflict, "同じ単語の進捗は1件だけ")

	reviewed := due.Add(time.Hour)
	progress.Level = model.Level2
	progress.NextReviewDate = due.AddDate(0, 0, 3)
	progress.LastReviewedAt = &reviewed
	require.NoError(t, repo.Update(ctx, db, progress))

	got, err := repo.FindByWordID(ctx, db, tenantID, wordID)
	require.NoError(t, err)
	assert.Equal(t, model.Level2, got.Level)
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, got.NextReviewDate.Equal(due.AddDate(0, 0, 3)))

	all, err := repo.FindByTenant(ctx, db, tenantID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteByWordIDs(ctx, db, tenantID, []string{wordID}))
	_, err = repo.FindByWordID(ctx, db, tenantID, wordID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	missing := &model.LearningProgress{ProgressID: uuid.New(), TenantID: tenantID}
	assert.ErrorIs(t, repo.Update(ctx, db, missing), model.ErrNotFound)
}
