package migrate

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMarkers(t *testing.T) {
	ctx := context.Background()
	markers := NewMemoryMarkers()

	done, err := markers.Done(ctx, "did:plc:abc123")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, markers.SetDone(ctx, "did:plc:abc123"))

	done, err = markers.Done(ctx, "did:plc:abc123")
	require.NoError(t, err)
	assert.True(t, done)

	done, err = markers.Done(ctx, "did:plc:otherxyz")
	require.NoError(t, err)
	assert.False(t, done, "markers are scoped per identity")

	require.NoError(t, markers.Clear(ctx, "did:plc:abc123"))

	done, err = markers.Done(ctx, "did:plc:abc123")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestMemoryMarkersClearAbsent(t *testing.T) {
	markers := NewMemoryMarkers()
	assert.NoError(t, markers.Clear(context.Background(), "did:plc:neverset"))
}

func TestMemoryMarkersConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	markers := NewMemoryMarkers()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			did := fmt.Sprintf("did:plc:worker%d", n)
			for j := 0; j < 50; j++ {
				_ = markers.SetDone(ctx, did)
				_, _ = markers.Done(ctx, did)
				_ = markers.Clear(ctx, did)
			}
		}(i)
	}
	wg.Wait()
}
