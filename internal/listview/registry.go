package listview

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry はテナントごとに1つの Combiner (一覧セッション) を管理します。
// 最後の利用者が離れてから grace が経過するとセッションを破棄します
type Registry struct {
	store  RecordStore
	logger *slog.Logger
	grace  time.Duration
	opts   []Option

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	closed   bool
}

type session struct {
	combiner *Combiner
	refs     int
	ready    chan struct{}
	err      error
	timer    *time.Timer
}

func NewRegistry(recordStore RecordStore, logger *slog.Logger, grace time.Duration, opts ...Option) *Registry {
	return &Registry{
		store:    recordStore,
		logger:   logger,
		grace:    grace,
		opts:     opts,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Acquire はテナントのセッションを取得 (なければ作成) し、最初のスナップショットが揃うまで待ちます。
// 使い終わったら必ず release を呼んでください
func (r *Registry) Acquire(ctx context.Context, tenantID uuid.UUID) (*Combiner, func(), error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, nil, fmt.Errorf("Registry.Acquire: %w", ErrClosed)
	}
	s, ok := r.sessions[tenantID]
	if !ok {
		s = &session{
			combiner: NewCombiner(tenantID, r.store, r.logger, r.opts...),
			ready:    make(chan struct{}),
		}
		r.sessions[tenantID] = s
		go func() {
			s.err = s.combiner.Start(context.Background())
			close(s.ready)
		}()
		r.logger.Debug("List session created", "tenant_id", tenantID.String())
	}
	s.refs++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	r.mu.Unlock()

	release := sync.OnceFunc(func() { r.release(tenantID, s) })

	select {
	case <-s.ready:
	case <-ctx.Done():
		release()
		return nil, nil, ctx.Err()
	}
	if s.err != nil {
		release()
		return nil, nil, fmt.Errorf("Registry.Acquire: %w", s.err)
	}
	return s.combiner, release, nil
}

func (r *Registry) release(tenantID uuid.UUID, s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.refs--
	if s.refs > 0 || r.sessions[tenantID] != s {
		return
	}

	select {
	case <-s.ready:
		if s.err != nil {
			// 起動に失敗したセッションは残さない
			delete(r.sessions, tenantID)
			go s.combiner.Close()
			return
		}
	default:
	}

	s.timer = time.AfterFunc(r.grace, func() { r.expire(tenantID, s) })
}

func (r *Registry) expire(tenantID uuid.UUID, s *session) {
	r.mu.Lock()
	if r.sessions[tenantID] != s || s.refs > 0 {
		r.mu.Unlock()
		return
	}
	delete(r.sessions, tenantID)
	r.mu.Unlock()

	<-s.ready
	s.combiner.Close()
	r.logger.Debug("List session expired", "tenant_id", tenantID.String())
}

// Get は生存中のセッションを返します
func (r *Registry) Get(tenantID uuid.UUID) (*Combiner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[tenantID]
	if !ok {
		return nil, false
	}
	return s.combiner, true
}

// Len は生存中のセッション数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close はすべてのセッションを破棄します
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*session)
	for _, s := range sessions {
		if s.timer != nil {
			s.timer.Stop()
		}
	}
	r.mu.Unlock()

	for _, s := range sessions {
		<-s.ready
		s.combiner.Close()
	}
	r.logger.Info("List sessions closed", "count", len(sessions))
}
