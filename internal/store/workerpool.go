package store

import (
	"context"
	"errors"
	"sync"
)

// Job はワーカープールに投入する1件の処理です
type Job func(ctx context.Context) error

// ErrPoolClosed は Close 後に Submit された場合に返ります
var ErrPoolClosed = errors.New("worker pool closed")

// WorkerPool は固定数のゴルーチンで書き込みジョブを処理します。
// ジョブのエラーは Result 経由で呼び出し元に返すので、プール自身は捨てます
type WorkerPool struct {
	jobs     chan Job
	quit     chan struct{}
	quitOnce sync.Once
	wg       sync.WaitGroup
	workers  int
	closeMu  sync.RWMutex
	closed   bool
}

func NewWorkerPool(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &WorkerPool{
		jobs:    make(chan Job, queue),
		quit:    make(chan struct{}),
		workers: workers,
	}
}

// Start はワーカーを起動します。ctx が終わるか Close されるまで動き続けます
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					_ = job(ctx)
				}
			}
		}()
	}
}

// Submit はジョブをキューに積みます。キューが満杯なら空くか ctx が終わるまで待ちます。
// 待っている間に Close されたら ErrPoolClosed を返します
func (p *WorkerPool) Submit(ctx context.Context, job Job) error {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close は新規受付を止め、キューに残ったジョブを処理し終えるまで待ちます
func (p *WorkerPool) Close() {
	// 待機中の Submit を先に解放しないとロックが取れない
	p.quitOnce.Do(func() { close(p.quit) })
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
