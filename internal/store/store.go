package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"wordnote/internal/middleware"
	"wordnote/internal/model"
	"wordnote/internal/repository"
)

// ErrMirror はローカルへの書き込みは成功し、リモートミラーへの複製だけが失敗したことを表します
var ErrMirror = errors.New("remote mirror write failed")

// WordStore はテナントごとの単語コレクションを監視可能な形で提供します。
// 書き込みはワーカープール上でローカルDBとリモートミラーに並行して行われ、
// ローカルへの反映が成功するたびに最新のスナップショットが購読者へ流れます
type WordStore struct {
	db           *gorm.DB
	wordRepo     repository.WordRepository
	progressRepo repository.ProgressRepository
	mirror       RemoteMirror
	pool         *WorkerPool
	logger       *slog.Logger

	mu       sync.Mutex
	watchers map[uuid.UUID]map[*watcher]struct{}

	// スナップショットの読み込みと配信の順序を揃える
	notifyMu sync.Mutex
}

func NewWordStore(db *gorm.DB, wordRepo repository.WordRepository, progressRepo repository.ProgressRepository, mirror RemoteMirror, pool *WorkerPool, logger *slog.Logger) *WordStore {
	if mirror == nil {
		mirror = NopMirror{}
	}
	return &WordStore{
		db:           db,
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
		mirror:       mirror,
		pool:         pool,
		logger:       logger,
		watchers:     make(map[uuid.UUID]map[*watcher]struct{}),
	}
}

// watcher は最新値だけを保持する容量1のチャネルを持つ購読者
type watcher struct {
	ch chan []model.Word
}

func (w *watcher) push(words []model.Word) {
	for {
		select {
		case w.ch <- words:
			return
		default:
		}
		// 読まれていない古い値を捨てて入れ直す
		select {
		case <-w.ch:
		default:
		}
	}
}

// Observe はテナントの単語一覧 (新しい順) を購読します。最初に現在のスナップショットが届きます。
// ctx が終わるとチャネルは閉じられます
func (s *WordStore) Observe(ctx context.Context, tenantID uuid.UUID) (<-chan []model.Word, error) {
	w := &watcher{ch: make(chan []model.Word, 1)}

	s.notifyMu.Lock()
	s.mu.Lock()
	set, ok := s.watchers[tenantID]
	if !ok {
		set = make(map[*watcher]struct{})
		s.watchers[tenantID] = set
	}
	set[w] = struct{}{}
	s.mu.Unlock()

	words, err := s.Snapshot(ctx, tenantID)
	if err != nil {
		s.notifyMu.Unlock()
		s.unwatch(tenantID, w)
		return nil, err
	}
	w.push(words)
	s.notifyMu.Unlock()

	go func() {
		<-ctx.Done()
		s.unwatch(tenantID, w)
	}()
	return w.ch, nil
}

func (s *WordStore) unwatch(tenantID uuid.UUID, w *watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.watchers[tenantID]
	if !ok {
		return
	}
	if _, ok := set[w]; !ok {
		return
	}
	delete(set, w)
	if len(set) == 0 {
		delete(s.watchers, tenantID)
	}
	close(w.ch)
}

func (s *WordStore) hasWatchers(tenantID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers[tenantID]) > 0
}

func (s *WordStore) broadcast(tenantID uuid.UUID, words []model.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for w := range s.watchers[tenantID] {
		w.push(words)
	}
}

// Snapshot は現在の単語一覧を新しい順に返します
func (s *WordStore) Snapshot(ctx context.Context, tenantID uuid.UUID) ([]model.Word, error) {
	rows, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}
	words := make([]model.Word, 0, len(rows))
	for _, row := range rows {
		words = append(words, *row)
	}
	return words, nil
}

func (s *WordStore) notify(ctx context.Context, tenantID uuid.UUID) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if !s.hasWatchers(tenantID) {
		return
	}
	words, err := s.Snapshot(ctx, tenantID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to reload words for observers", "error", err, "tenant_id", tenantID.String())
		return
	}
	s.broadcast(tenantID, words)
}

// Write は1件の単語を作成または上書きします
func (s *WordStore) Write(ctx context.Context, word model.Word) *Result {
	return s.WriteBatch(ctx, []model.Word{word})
}

// WriteBatch は単語をまとめて作成または上書きします。ローカルは1トランザクションで反映されます
func (s *WordStore) WriteBatch(ctx context.Context, words []model.Word) *Result {
	if len(words) == 0 {
		return Completed(nil)
	}
	tenantID := words[0].TenantID
	now := time.Now()
	rows := make([]*model.Word, 0, len(words))
	for _, w := range words {
		if w.TenantID != tenantID {
			return Completed(fmt.Errorf("WordStore.WriteBatch: mixed tenants in one batch: %w", model.ErrInvalidInput))
		}
		if w.WordID == "" {
			return Completed(fmt.Errorf("WordStore.WriteBatch: empty word id: %w", model.ErrInvalidInput))
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		w.UpdatedAt = now
		row := w
		rows = append(rows, &row)
	}
	mirrored := make([]model.Word, len(rows))
	for i, row := range rows {
		mirrored[i] = *row
	}

	return s.submit(ctx, tenantID, "write", len(rows),
		func(ctx context.Context, tx *gorm.DB) error {
			return s.wordRepo.Upsert(ctx, tx, rows)
		},
		func(ctx context.Context) error {
			return s.mirror.PutWords(ctx, tenantID, mirrored)
		},
	)
}

// Delete は指定IDの単語と学習進捗を削除します。存在しないIDは無視されます
func (s *WordStore) Delete(ctx context.Context, tenantID uuid.UUID, wordIDs []string) *Result {
	if len(wordIDs) == 0 {
		return Completed(nil)
	}
	ids := append([]string(nil), wordIDs...)

	return s.submit(ctx, tenantID, "delete", len(ids),
		func(ctx context.Context, tx *gorm.DB) error {
			if err := s.progressRepo.DeleteByWordIDs(ctx, tx, tenantID, ids); err != nil {
				return err
			}
			_, err := s.wordRepo.DeleteByIDs(ctx, tx, tenantID, ids)
			return err
		},
		func(ctx context.Context) error {
			return s.mirror.DeleteWords(ctx, tenantID, ids)
		},
	)
}

// submit はローカルとリモートの書き込みを並行に実行するジョブを投入します。
// リモートが失敗してもローカルが成功していれば購読者には反映します
func (s *WordStore) submit(ctx context.Context, tenantID uuid.UUID, op string, count int,
	local func(ctx context.Context, tx *gorm.DB) error,
	remote func(ctx context.Context) error,
) *Result {
	result := newResult()
	// リクエストが終わっても書き込みは最後まで行う
	jobCtx := context.WithoutCancel(ctx)
	logger := middleware.GetLogger(ctx).With("op", op, "tenant_id", tenantID.String(), "count", count)

	job := func(context.Context) error {
		var localErr, remoteErr error
		var g errgroup.Group
		g.Go(func() error {
			localErr = s.db.WithContext(jobCtx).Transaction(func(tx *gorm.DB) error {
				return local(jobCtx, tx)
			})
			return localErr
		})
		g.Go(func() error {
			remoteErr = remote(jobCtx)
			return remoteErr
		})
		_ = g.Wait()

		if localErr != nil {
			logger.Error("Local word store write failed", "error", localErr)
			result.complete(fmt.Errorf("WordStore.%s: %w", op, localErr))
			return localErr
		}
		s.notify(jobCtx, tenantID)
		if remoteErr != nil {
			logger.Warn("Remote mirror write failed", "error", remoteErr)
			result.complete(fmt.Errorf("WordStore.%s: %w: %w", op, ErrMirror, remoteErr))
			return remoteErr
		}
		logger.Debug("Word store write completed")
		result.complete(nil)
		return nil
	}

	if err := s.pool.Submit(ctx, job); err != nil {
		logger.Error("Failed to submit word store job", "error", err)
		result.complete(fmt.Errorf("WordStore.%s: %w", op, err))
	}
	return result
}

// Close は書き込みキューを処理し終えるまで待ちます
func (s *WordStore) Close() {
	s.pool.Close()
	s.logger.Info("Word store closed")
}
