package listview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordnote/internal/model"
	"wordnote/internal/store"
)

// ErrClosed は破棄済みのセッションに対する操作で返ります
var ErrClosed = errors.New("list session closed")

// クライアントに見せる失敗メッセージ。詳細はサーバーのログにだけ出す
const (
	msgRemindFailed = "リマインドの保存に失敗しました"
	msgCommitFailed = "単語の削除に失敗しました"
	msgMirrorFailed = "リモートへの同期に失敗しました"
)

// RecordStore は一覧が購読・更新する単語ストアです
type RecordStore interface {
	Observe(ctx context.Context, tenantID uuid.UUID) (<-chan []model.Word, error)
	WriteBatch(ctx context.Context, words []model.Word) *store.Result
	Delete(ctx context.Context, tenantID uuid.UUID, wordIDs []string) *store.Result
}

type Option func(*Combiner)

// WithUndoWindow を指定すると、削除バッチは d 経過後に自動で確定されます
func WithUndoWindow(d time.Duration) Option {
	return func(c *Combiner) {
		c.undoWindow = d
	}
}

// Combiner は単語ストアのスナップショット・選択・保留削除・検索を1つの UIState にまとめます。
// すべての入力の変更は mu の下で行い、その場で再計算して購読者へ配信します
type Combiner struct {
	tenantID   uuid.UUID
	store      RecordStore
	logger     *slog.Logger
	undoWindow time.Duration

	mu         sync.Mutex
	records    []model.Word
	loading    bool
	selection  *SelectionTracker
	pending    *PendingBuffer
	search     SearchFilter
	committing map[string]struct{} // commit 済みでストアからまだ消えていないID
	timers     map[string]*time.Timer
	lastErr    string
	state      model.UIState
	subs       map[*subscriber]struct{}
	started    bool
	closed     bool
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewCombiner(tenantID uuid.UUID, recordStore RecordStore, logger *slog.Logger, opts ...Option) *Combiner {
	c := &Combiner{
		tenantID:   tenantID,
		store:      recordStore,
		logger:     logger.With("tenant_id", tenantID.String()),
		loading:    true,
		selection:  NewSelectionTracker(),
		pending:    NewPendingBuffer(),
		committing: make(map[string]struct{}),
		timers:     make(map[string]*time.Timer),
		state:      model.InitialUIState(),
		subs:       make(map[*subscriber]struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start はストアの購読を始め、最初のスナップショットを反映してから戻ります
func (c *Combiner) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return fmt.Errorf("Combiner.Start: %w", ErrClosed)
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	ch, err := c.store.Observe(ctx, c.tenantID)
	if err != nil {
		c.cancel()
		close(c.done)
		return fmt.Errorf("Combiner.Start: %w", err)
	}

	select {
	case words, ok := <-ch:
		if ok {
			c.applySnapshot(words)
		}
	case <-ctx.Done():
		close(c.done)
		return ctx.Err()
	}

	go func() {
		defer close(c.done)
		for words := range ch {
			c.applySnapshot(words)
		}
	}()
	return nil
}

func (c *Combiner) applySnapshot(words []model.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.records = words
	c.loading = false
	c.pruneCommittingLocked()
	c.recomputeLocked()
}

// pruneCommittingLocked はストアから消えたIDを committing から外します
func (c *Combiner) pruneCommittingLocked() {
	if len(c.committing) == 0 {
		return
	}
	present := make(map[string]struct{}, len(c.records))
	for _, w := range c.records {
		present[w.WordID] = struct{}{}
	}
	for id := range c.committing {
		if _, ok := present[id]; !ok {
			delete(c.committing, id)
		}
	}
}

func (c *Combiner) hiddenLocked(id string) bool {
	if c.pending.Contains(id) {
		return true
	}
	_, ok := c.committing[id]
	return ok
}

func (c *Combiner) recomputeLocked() {
	items := make([]model.ViewItem, 0, len(c.records))
	results := make([]model.ViewItem, 0)
	for _, w := range c.records {
		if c.hiddenLocked(w.WordID) {
			continue
		}
		item := model.ViewItem{Word: w, IsSelected: c.selection.Contains(w.WordID)}
		items = append(items, item)
		if c.search.Match(w.Term) {
			results = append(results, item)
		}
	}

	c.state = model.UIState{
		Items:         items,
		ShowEmpty:     len(items) == 0 && !c.loading,
		Loading:       c.loading,
		ActionMode:    c.selection.Active(),
		SelectedCount: c.selection.Len(),
		Searching:     c.search.Active(),
		Query:         c.search.Query(),
		SearchResults: results,
		Pending:       c.pending.Batches(),
		Error:         c.lastErr,
	}
	for s := range c.subs {
		s.push(c.state)
	}
}

// activeItemsLocked は検索中なら検索結果、そうでなければメインの一覧
func (c *Combiner) activeItemsLocked() []model.ViewItem {
	if c.search.Active() {
		return c.state.SearchResults
	}
	return c.state.Items
}

// State は現在の UIState を返します
func (c *Combiner) State() model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Combiner) Toggle(id string) model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Toggle(id)
	c.recomputeLocked()
	return c.state
}

// SelectAll は表示中の一覧 (検索中なら検索結果) をすべて選択します
func (c *Combiner) SelectAll() model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := c.activeItemsLocked()
	ids := make([]string, 0, len(active))
	for _, item := range active {
		ids = append(ids, item.WordID)
	}
	c.selection.SelectAll(ids)
	c.recomputeLocked()
	return c.state
}

func (c *Combiner) ClearSelection() model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Clear()
	c.recomputeLocked()
	return c.state
}

func (c *Combiner) StartSearching() model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search.Start()
	c.recomputeLocked()
	return c.state
}

func (c *Combiner) StopSearching() model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search.Stop()
	c.recomputeLocked()
	return c.state
}

func (c *Combiner) SetQuery(q string) model.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search.SetQuery(q)
	c.recomputeLocked()
	return c.state
}

// RemindSelected は表示中の一覧で選択されている単語の remind を立ててまとめて書き込み、選択を解除します。
// 書き込みの完了は待ちません
func (c *Combiner) RemindSelected(ctx context.Context) (*store.Result, int, model.UIState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var words []model.Word
	for _, item := range c.activeItemsLocked() {
		if !item.IsSelected {
			continue
		}
		w := item.Word
		w.Remind = true
		words = append(words, w)
	}
	c.selection.Clear()
	c.recomputeLocked()

	if len(words) == 0 {
		return store.Completed(nil), 0, c.state
	}
	res := c.store.WriteBatch(ctx, words)
	c.watchLocked(res, "remind", nil)
	return res, len(words), c.state
}

// DeleteSelected は選択中のIDを新しい保留バッチに移し、選択を解除します。
// 何も選択されていなければバッチは作らず空のIDを返します
func (c *Combiner) DeleteSelected() (string, int, model.UIState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := c.selection.IDs()
	batchID := c.pending.Stage(ids)
	c.selection.Clear()
	c.recomputeLocked()

	if batchID != "" && c.undoWindow > 0 {
		c.timers[batchID] = time.AfterFunc(c.undoWindow, func() {
			c.autoCommit(batchID)
		})
	}
	return batchID, len(ids), c.state
}

func (c *Combiner) autoCommit(batchID string) {
	_, _, err := c.Commit(context.Background(), batchID)
	if err != nil && !errors.Is(err, model.ErrNotFound) && !errors.Is(err, ErrClosed) {
		c.logger.Error("Auto commit of pending batch failed", "batch_id", batchID, "error", err)
	}
}

// Restore はバッチを取り消し、単語を一覧に戻します。ストアには何もしません
func (c *Combiner) Restore(batchID string) (model.UIState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.state, ErrClosed
	}
	if _, err := c.pending.Take(batchID); err != nil {
		return c.state, err
	}
	c.stopTimerLocked(batchID)
	c.recomputeLocked()
	return c.state, nil
}

// Commit はバッチの単語をストアから削除します。ストアから消えるまで一覧には戻しません
func (c *Combiner) Commit(ctx context.Context, batchID string) (*store.Result, model.UIState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, c.state, ErrClosed
	}
	ids, err := c.pending.Take(batchID)
	if err != nil {
		return nil, c.state, err
	}
	c.stopTimerLocked(batchID)
	for _, id := range ids {
		c.committing[id] = struct{}{}
	}
	c.recomputeLocked()

	res := c.store.Delete(ctx, c.tenantID, ids)
	c.watchLocked(res, "commit", func() {
		// 削除に失敗したら一覧に戻す
		for _, id := range ids {
			delete(c.committing, id)
		}
	})
	return res, c.state, nil
}

func (c *Combiner) stopTimerLocked(batchID string) {
	if t, ok := c.timers[batchID]; ok {
		t.Stop()
		delete(c.timers, batchID)
	}
}

// watchLocked は書き込み結果を待ち、失敗なら UIState の error に出します。成功すれば error を消します
func (c *Combiner) watchLocked(res *store.Result, op string, onFail func()) {
	go func() {
		<-res.Done()
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		if err := res.Err(); err != nil {
			c.logger.Error("List store operation failed", "op", op, "error", err)
			c.lastErr = clientMessage(op, err)
			if onFail != nil {
				onFail()
			}
		} else {
			c.lastErr = ""
			c.pruneCommittingLocked()
		}
		c.recomputeLocked()
	}()
}

func clientMessage(op string, err error) string {
	switch {
	case errors.Is(err, store.ErrMirror):
		return msgMirrorFailed
	case op == "commit":
		return msgCommitFailed
	default:
		return msgRemindFailed
	}
}

// Subscribe は UIState の購読を始めます。最新の状態だけを保持し、ctx が終わるとチャネルを閉じます
func (c *Combiner) Subscribe(ctx context.Context) <-chan model.UIState {
	s := &subscriber{ch: make(chan model.UIState, 1)}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(s.ch)
		return s.ch
	}
	c.subs[s] = struct{}{}
	s.push(c.state)
	c.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-c.done:
		}
		c.unsubscribe(s)
	}()
	return s.ch
}

func (c *Combiner) unsubscribe(s *subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subs[s]; !ok {
		return
	}
	delete(c.subs, s)
	close(s.ch)
}

// Close は購読をやめ、保留中のバッチはすべて取り消します (削除は確定しません)
func (c *Combiner) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for batchID := range c.timers {
		c.stopTimerLocked(batchID)
	}
	if n := c.pending.Len(); n > 0 {
		c.logger.Info("Dropping pending delete batches on session close", "batches", n)
	}
	c.pending = NewPendingBuffer()
	for s := range c.subs {
		delete(c.subs, s)
		close(s.ch)
	}
	cancel := c.cancel
	started := c.started
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if !started {
		close(c.done)
	}
}

type subscriber struct {
	ch chan model.UIState
}

func (s *subscriber) push(state model.UIState) {
	for {
		select {
		case s.ch <- state:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}
