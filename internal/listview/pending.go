package listview

import (
	"fmt"

	"github.com/google/uuid"

	"wordnote/internal/model"
)

// PendingBuffer は Undo 待ちの削除バッチを保持します。
// バッチは積み重なり、それぞれ独立して確定 (commit) または取り消し (restore) できます
type PendingBuffer struct {
	batches map[string][]string
	order   []string
	members map[string]int
}

func NewPendingBuffer() *PendingBuffer {
	return &PendingBuffer{
		batches: make(map[string][]string),
		members: make(map[string]int),
	}
}

// Stage は ids を新しいバッチとして保留し、バッチIDを返します。ids が空ならバッチは作りません
func (p *PendingBuffer) Stage(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	batchID := uuid.NewString()
	batch := append([]string(nil), ids...)
	p.batches[batchID] = batch
	p.order = append(p.order, batchID)
	for _, id := range batch {
		p.members[id]++
	}
	return batchID
}

// Take はバッチを取り除いて中身のIDを返します。restore と commit の両方で使います
func (p *PendingBuffer) Take(batchID string) ([]string, error) {
	batch, ok := p.batches[batchID]
	if !ok {
		return nil, fmt.Errorf("pending batch %q: %w", batchID, model.ErrNotFound)
	}
	delete(p.batches, batchID)
	for i, v := range p.order {
		if v == batchID {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	for _, id := range batch {
		if p.members[id]--; p.members[id] <= 0 {
			delete(p.members, id)
		}
	}
	return batch, nil
}

func (p *PendingBuffer) Contains(id string) bool {
	return p.members[id] > 0
}

func (p *PendingBuffer) Len() int {
	return len(p.batches)
}

// Batches は保留された順にバッチの概要を返します
func (p *PendingBuffer) Batches() []model.PendingBatch {
	out := make([]model.PendingBatch, 0, len(p.order))
	for _, batchID := range p.order {
		out = append(out, model.PendingBatch{BatchID: batchID, Count: len(p.batches[batchID])})
	}
	return out
}
