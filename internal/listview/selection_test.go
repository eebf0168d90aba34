package listview_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"wordnote/internal/listview"
)

func TestSelectionTracker_ToggleScenario(t *testing.T) {
	s := listview.NewSelectionTracker()

	s.Toggle("1")
	assert.True(t, s.Active())
	assert.Equal(t, []string{"1"}, s.IDs())

	s.Toggle("2")
	assert.Equal(t, []string{"1", "2"}, s.IDs())

	s.Toggle("1")
	assert.Equal(t, []string{"2"}, s.IDs())
	assert.True(t, s.Active())

	s.Toggle("2")
	assert.Empty(t, s.IDs())
	assert.False(t, s.Active(), "最後の1件を外すと選択モードも終わる")
}

func TestSelectionTracker_ToggleIsSymmetricDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d", "e"}

	for round := 0; round < 200; round++ {
		s := listview.NewSelectionTracker()
		want := map[string]bool{}
		for i := 0; i < rng.Intn(20); i++ {
			id := ids[rng.Intn(len(ids))]
			s.Toggle(id)
			want[id] = !want[id]
		}

		n := 0
		for _, id := range ids {
			assert.Equal(t, want[id], s.Contains(id), "round %d id %s", round, id)
			if want[id] {
				n++
			}
		}
		assert.Equal(t, n, s.Len())
		assert.Equal(t, n > 0, s.Active())
	}
}

func TestSelectionTracker_SelectAllAndClear(t *testing.T) {
	s := listview.NewSelectionTracker()
	s.Toggle("x")
	s.SelectAll([]string{"1", "2", "2", "3"})
	assert.Equal(t, []string{"1", "2", "3"}, s.IDs(), "置き換えで重複は除かれる")
	assert.False(t, s.Contains("x"))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.False(t, s.Active())

	s.SelectAll(nil)
	assert.False(t, s.Active())
}
