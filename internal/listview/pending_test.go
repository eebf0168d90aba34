package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnote/internal/listview"
	"wordnote/internal/model"
)

func TestPendingBuffer_StageAndTake(t *testing.T) {
	p := listview.NewPendingBuffer()

	assert.Empty(t, p.Stage(nil), "空のバッチは作らない")

	first := p.Stage([]string{"1", "2"})
	second := p.Stage([]string{"2", "3"})
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)

	assert.Equal(t, []model.PendingBatch{{BatchID: first, Count: 2}, {BatchID: second, Count: 2}}, p.Batches())
	for _, id := range []string{"1", "2", "3"} {
		assert.True(t, p.Contains(id), id)
	}

	ids, err := p.Take(first)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
	assert.False(t, p.Contains("1"))
	assert.True(t, p.Contains("2"), "別のバッチにも含まれるIDは保留のまま")

	_, err = p.Take(first)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = p.Take(second)
	require.NoError(t, err)
	assert.Zero(t, p.Len())
	assert.Empty(t, p.Batches())
}

func TestSearchFilter(t *testing.T) {
	var f listview.SearchFilter
	assert.False(t, f.Match("word"), "検索語が空なら何にも一致しない")

	f.Start()
	f.Start()
	assert.True(t, f.Active())

	f.SetQuery("word")
	assert.True(t, f.Match("word1"))
	assert.False(t, f.Match("Word1"), "大文字小文字を区別する")
	assert.False(t, f.Match("another"))

	f.Stop()
	f.Stop()
	assert.False(t, f.Active())
	assert.Empty(t, f.Query())
}
