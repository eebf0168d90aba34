package store

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunsAllJobs(t *testing.T) {
	p := NewWorkerPool(4, 16)
	p.Start(context.Background())

	var ran int32
	const jobs = 100
	for i := 0; i < jobs; i++ {
		err := p.Submit(context.Background(), func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		require.NoError(t, err)
	}
	p.Close()

	assert.Equal(t, int32(jobs), atomic.LoadInt32(&ran), "Close はキューを処理し終えてから戻ること")
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	p.Start(context.Background())
	p.Close()

	err := p.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_BlockedSubmitReleasedByClose(t *testing.T) {
	// ワーカーを起動しないのでキューが満杯のままになる
	p := NewWorkerPool(1, 1)
	require.NoError(t, p.Submit(context.Background(), func(ctx context.Context) error { return nil }))

	done := make(chan error, 1)
	go func() {
		done <- p.Submit(context.Background(), func(ctx context.Context) error { return nil })
	}()
	time.Sleep(10 * time.Millisecond)

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrPoolClosed)
	case <-time.After(time.Second):
		t.Fatal("blocked Submit was not released by Close")
	}
	<-closed
}

func TestWorkerPool_SubmitHonorsContext(t *testing.T) {
	p := NewWorkerPool(1, 1)
	require.NoError(t, p.Submit(context.Background(), func(ctx context.Context) error { return nil }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Submit(ctx, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
