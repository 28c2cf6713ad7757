package saavn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("d", 4)

	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("c"))
	assert.True(t, c.Contains("d"))
}

func TestLRUCache_TouchWithoutRead(t *testing.T) {
	c := newLRUCache(2)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Touch("a")
	c.Put("c", 3)

	assert.True(t, c.Contains("a"))
	assert.False(t, c.Contains("b"))
}

func TestLRUCache_PutReplacesValue(t *testing.T) {
	c := newLRUCache(2)
	c.Put("a", 1)
	c.Put("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRUCache_CeilingHolds(t *testing.T) {
	c := newLRUCache(256)
	for i := 0; i < 300; i++ {
		c.Put(fmt.Sprintf("query-%d|10", i), i)
	}

	assert.Equal(t, 256, c.Len())
	// The oldest keys fell off the back.
	assert.False(t, c.Contains("query-0|10"))
	assert.True(t, c.Contains("query-299|10"))
}

func TestLRUCache_GetMiss(t *testing.T) {
	c := newLRUCache(2)
	_, ok := c.Get("missing")
	assert.False(t, ok)
}
