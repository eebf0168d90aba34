package listview_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnote/internal/listview"
)

func TestRegistry_SharesSessionPerTenant(t *testing.T) {
	fs := newFakeStore(words(threeWords, "1", "2")...)
	r := listview.NewRegistry(fs, testLogger, time.Minute)
	defer r.Close()
	tenantID := uuid.New()

	first, release1, err := r.Acquire(context.Background(), tenantID)
	require.NoError(t, err)
	second, release2, err := r.Acquire(context.Background(), tenantID)
	require.NoError(t, err)
	defer release1()
	defer release2()

	assert.Same(t, first, second)
	assert.False(t, first.State().Loading, "最初のスナップショットが届いてから返る")
	assert.Equal(t, 1, fs.observeCount())

	other, release3, err := r.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer release3()
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_TeardownAfterGrace(t *testing.T) {
	fs := newFakeStore(words(threeWords, "1", "2")...)
	grace := 30 * time.Millisecond
	r := listview.NewRegistry(fs, testLogger, grace)
	defer r.Close()
	tenantID := uuid.New()

	c, release, err := r.Acquire(context.Background(), tenantID)
	require.NoError(t, err)
	c.Toggle("1")
	release()
	release() // 2回呼んでも参照数は1つしか減らない

	// 猶予期間内なら同じセッションが使われ、状態も残っている
	time.Sleep(grace / 3)
	again, releaseAgain, err := r.Acquire(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Same(t, c, again)
	assert.Equal(t, 1, again.State().SelectedCount)

	// 利用者がいる間は破棄されない
	time.Sleep(2 * grace)
	_, ok := r.Get(tenantID)
	assert.True(t, ok)

	releaseAgain()
	eventually(t, func() bool { return r.Len() == 0 }, "猶予期間の後に破棄される")

	fresh, releaseFresh, err := r.Acquire(context.Background(), tenantID)
	require.NoError(t, err)
	defer releaseFresh()
	assert.NotSame(t, c, fresh)
	assert.Zero(t, fresh.State().SelectedCount, "新しいセッションは初期状態から")
}

func TestRegistry_Close(t *testing.T) {
	r := listview.NewRegistry(newFakeStore(), testLogger, time.Minute)
	_, release, err := r.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	release()

	r.Close()
	assert.Zero(t, r.Len())
	_, _, err = r.Acquire(context.Background(), uuid.New())
	assert.ErrorIs(t, err, listview.ErrClosed)
}
