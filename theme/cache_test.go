package theme

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "garden:render:did:plc:x:10x10:flower")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "garden:render:did:plc:x:10x10:flower", "<svg/>"))
	markup, ok, err := c.Get(ctx, "garden:render:did:plc:x:10x10:flower")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<svg/>", markup)

	assert.NoError(t, c.Close())
}

func TestMemoryCacheClearIsScopedToIdentifier(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, renderKey("did:plc:a", 10, 10, KindFlower), "a"))
	require.NoError(t, c.Put(ctx, renderKey("did:plc:a", 20, 20, KindIsoline), "a2"))
	require.NoError(t, c.Put(ctx, renderKey("did:plc:ab", 10, 10, KindFlower), "b"))
	require.Equal(t, 3, c.Len())

	require.NoError(t, c.Clear(ctx, "did:plc:a"))
	assert.Equal(t, 1, c.Len())

	// the longer identifier does not share the cleared prefix
	markup, ok, err := c.Get(ctx, renderKey("did:plc:ab", 10, 10, KindFlower))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", markup)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := renderKey(fmt.Sprintf("did:plc:c%d", n), 10, 10, KindFlower)
			_ = c.Put(ctx, key, "v")
			_, _, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, c.Len())
}
