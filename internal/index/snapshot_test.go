package index

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/faves/internal/catalog"
)

func testSet() *catalog.Set {
	return catalog.New(map[string]any{
		"books": []any{
			map[string]any{"title": "A", "tags": []any{"x"}},
			map[string]any{"link": "https://example.com"},
		},
		"films": []any{
			map[string]any{"title": "B"},
		},
		"odd": map[string]any{"not": "an array"},
	})
}

func TestSnapshotEmpty(t *testing.T) {
	s := NewSnapshot()

	assert.Nil(t, s.Current())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Hits())
	assert.True(t, s.GetLastReload().IsZero())
	assert.Equal(t, 0, s.Reloads())
}

func TestSnapshotReplace(t *testing.T) {
	s := NewSnapshot()
	s.Replace(testSet())

	require.NotNil(t, s.Current())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 1, s.InvalidEntries())
	assert.False(t, s.GetLastReload().IsZero())
	assert.Equal(t, 1, s.Reloads())

	hits := s.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, "books", hits[0].Category)
	assert.Equal(t, "A", hits[0].Entry.Title)
	assert.Equal(t, "films", hits[1].Category)
}

func TestSnapshotReplaceKeepsOldSetIntact(t *testing.T) {
	s := NewSnapshot()
	first := testSet()
	s.Replace(first)

	held := s.Current()
	s.Replace(catalog.New(map[string]any{"music": []any{}}))

	assert.Same(t, first, held)
	assert.Equal(t, 3, held.Len())
	assert.Equal(t, []string{"music"}, s.Current().Names())
	assert.Equal(t, 2, s.Reloads())
}

func TestSnapshotConcurrentReaders(t *testing.T) {
	s := NewSnapshot()
	s.Replace(testSet())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Current().Names()
				_ = s.Hits()
			}
		}()
	}
	for i := 0; i < 10; i++ {
		s.Replace(testSet())
	}
	wg.Wait()

	assert.Equal(t, 11, s.Reloads())
}
