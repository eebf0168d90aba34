package listview_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wordnote/internal/model"
	"wordnote/internal/store"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeStore はメモリ上の RecordStore。hold を立てると書き込みの反映と完了を止めておけます
type fakeStore struct {
	mu        sync.Mutex
	words     []model.Word
	observers map[chan []model.Word]struct{}
	observeN  int
	failWith  error
	hold      bool
	held      []func()
	writes    [][]model.Word
	deletes   [][]string
}

func newFakeStore(words ...model.Word) *fakeStore {
	return &fakeStore{words: words, observers: make(map[chan []model.Word]struct{})}
}

func (f *fakeStore) Observe(ctx context.Context, _ uuid.UUID) (<-chan []model.Word, error) {
	ch := make(chan []model.Word, 1)
	f.mu.Lock()
	f.observers[ch] = struct{}{}
	f.observeN++
	pushLatest(ch, f.snapshotLocked())
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.observers, ch)
		close(ch)
		f.mu.Unlock()
	}()
	return ch, nil
}

func pushLatest(ch chan []model.Word, words []model.Word) {
	for {
		select {
		case ch <- words:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (f *fakeStore) snapshotLocked() []model.Word {
	return append([]model.Word(nil), f.words...)
}

func (f *fakeStore) emitLocked() {
	for ch := range f.observers {
		pushLatest(ch, f.snapshotLocked())
	}
}

func (f *fakeStore) WriteBatch(_ context.Context, words []model.Word) *store.Result {
	res, complete := store.NewResult()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, words)
	failWith := f.failWith
	apply := func() {
		f.mu.Lock()
		if failWith == nil {
			for _, w := range words {
				for i := range f.words {
					if f.words[i].WordID == w.WordID {
						f.words[i] = w
					}
				}
			}
			f.emitLocked()
		}
		f.mu.Unlock()
		complete(failWith)
	}
	f.runLocked(apply)
	return res
}

func (f *fakeStore) Delete(_ context.Context, _ uuid.UUID, ids []string) *store.Result {
	res, complete := store.NewResult()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, ids)
	failWith := f.failWith
	apply := func() {
		f.mu.Lock()
		if failWith == nil {
			drop := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				drop[id] = struct{}{}
			}
			kept := f.words[:0:0]
			for _, w := range f.words {
				if _, ok := drop[w.WordID]; !ok {
					kept = append(kept, w)
				}
			}
			f.words = kept
			f.emitLocked()
		}
		f.mu.Unlock()
		complete(failWith)
	}
	f.runLocked(apply)
	return res
}

func (f *fakeStore) runLocked(apply func()) {
	if f.hold {
		f.held = append(f.held, apply)
		return
	}
	go apply()
}

// release は止めていた書き込みをすべて反映します
func (f *fakeStore) release() {
	f.mu.Lock()
	held := f.held
	f.held = nil
	f.hold = false
	f.mu.Unlock()
	for _, apply := range held {
		apply()
	}
}

func (f *fakeStore) setFail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

func (f *fakeStore) setHold(hold bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hold = hold
}

func (f *fakeStore) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.words))
	for _, w := range f.words {
		out = append(out, w.WordID)
	}
	return out
}

func (f *fakeStore) word(id string) model.Word {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.words {
		if w.WordID == id {
			return w
		}
	}
	return model.Word{}
}

func (f *fakeStore) observeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.observeN
}

func words(terms map[string]string, order ...string) []model.Word {
	out := make([]model.Word, 0, len(order))
	for _, id := range order {
		out = append(out, model.Word{WordID: id, Term: terms[id], Meaning: terms[id]})
	}
	return out
}

func itemIDs(items []model.ViewItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.WordID)
	}
	return out
}

func waitResult(t *testing.T, res *store.Result) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	select {
	case <-res.Done():
		return res.Err()
	case <-ctx.Done():
		t.Fatal("timed out waiting for store result")
		return nil
	}
}

// eventually は条件が成り立つまで State をポーリングします
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond, msg)
}
