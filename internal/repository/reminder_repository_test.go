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

func TestGormReminderRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormReminderRepository()
	tenantID := uuid.New()

	_, err := repo.FindByTenant(ctx, db, tenantID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	settings := model.DefaultReminderSettings(tenantID)
	settings.Enabled = true
	require.NoError(t, repo.Save(ctx, db, settings))

	sentAt := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkSent(ctx, db, tenantID, sentAt))

	// 上書き保存しても送信時刻は残ること
	settings.IntervalMinutes = 60
	require.NoError(t, repo.Save(ctx, db, settings))

	got, err := repo.FindByTenant(ctx, db, tenantID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.IntervalMinutes)
	require.NotNil(t, got.LastSentAt)
	assert.True(t, got.LastSentAt.Equal(sentAt))

	enabled, err := repo.FindEnabled(ctx, db)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, tenantID, enabled[0].TenantID)

	assert.ErrorIs(t, repo.MarkSent(ctx, db, uuid.New(), sentAt), model.ErrNotFound)
}
