package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "did:plc:abc123"

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	value := map[string]any{
		"$type": "garden.spores.text",
		"body":  "hello",
	}

	put, err := store.PutRecord(ctx, "garden.spores.text", "3kaaa", value)
	require.NoError(t, err)
	assert.Equal(t, "at://did:plc:abc123/garden.spores.text/3kaaa", put.URI)
	assert.NotEmpty(t, put.CID)
	assert.Equal(t, "garden.spores.text", put.Collection)
	assert.Equal(t, "3kaaa", put.RKey)

	got, err := store.GetRecord(ctx, testOwner, "garden.spores.text", "3kaaa")
	require.NoError(t, err)
	assert.Equal(t, put.URI, got.URI)
	assert.Equal(t, put.CID, got.CID)
	assert.Equal(t, value, got.Value)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	t.Run("absent record", func(t *testing.T) {
		_, err := store.GetRecord(ctx, testOwner, "garden.spores.text", "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("other account", func(t *testing.T) {
		_, err := store.PutRecord(ctx, "garden.spores.text", "3kaaa", map[string]any{"body": "hi"})
		require.NoError(t, err)

		_, err = store.GetRecord(ctx, "did:plc:someoneelse", "garden.spores.text", "3kaaa")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestMemoryStoreRewriteChangesCID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	first, err := store.PutRecord(ctx, "garden.spores.config", "self", map[string]any{"title": "one"})
	require.NoError(t, err)

	second, err := store.PutRecord(ctx, "garden.spores.config", "self", map[string]any{"title": "two"})
	require.NoError(t, err)

	assert.Equal(t, first.URI, second.URI)
	assert.NotEqual(t, first.CID, second.CID)

	got, err := store.GetRecord(ctx, testOwner, "garden.spores.config", "self")
	require.NoError(t, err)
	assert.Equal(t, "two", got.Value["title"])
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	_, err := store.PutRecord(ctx, "garden.spores.text", "3kaaa", map[string]any{"body": "hi"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRecord(ctx, "garden.spores.text", "3kaaa"))

	_, err = store.GetRecord(ctx, testOwner, "garden.spores.text", "3kaaa")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	t.Run("absent record is a no-op", func(t *testing.T) {
		assert.NoError(t, store.DeleteRecord(ctx, "garden.spores.text", "3kaaa"))
		assert.NoError(t, store.DeleteRecord(ctx, "garden.spores.unknown", "never"))
	})
}

func TestMemoryStoreListPagination(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	// Inserted out of order on purpose; listing must come back sorted.
	for _, rkey := range []string{"3kd", "3ka", "3kg", "3kb", "3kf", "3kc", "3ke"} {
		_, err := store.PutRecord(ctx, "garden.spores.spore", rkey, map[string]any{"rkey": rkey})
		require.NoError(t, err)
	}

	var collected []string
	cursor := ""
	pages := 0
	for {
		page, err := store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 3, Cursor: cursor})
		require.NoError(t, err)
		pages++
		for _, rec := range page.Records {
			collected = append(collected, rec.RKey)
		}
		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"3ka", "3kb", "3kc", "3kd", "3ke", "3kf", "3kg"}, collected)
}

func TestMemoryStoreListDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	for i := 0; i < 5; i++ {
		_, err := store.PutRecord(ctx, "garden.spores.spore", fmt.Sprintf("3k%03d", i), map[string]any{"i": i})
		require.NoError(t, err)
	}

	page, err := store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Records, 5)
	assert.Empty(t, page.Cursor)
}

func TestMemoryStoreListEmptyCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	page, err := store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Empty(t, page.Cursor)
}

func TestMemoryStoreListStaleCursor(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	for _, rkey := range []string{"3ka", "3kb", "3kc", "3kd"} {
		_, err := store.PutRecord(ctx, "garden.spores.spore", rkey, map[string]any{"rkey": rkey})
		require.NoError(t, err)
	}

	page, err := store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, "3kb", page.Cursor)

	// The cursor key vanishing between pages must not derail the walk.
	require.NoError(t, store.DeleteRecord(ctx, "garden.spores.spore", "3kb"))

	page, err = store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 2, Cursor: page.Cursor})
	require.NoError(t, err)

	rkeys := make([]string, 0, len(page.Records))
	for _, rec := range page.Records {
		rkeys = append(rkeys, rec.RKey)
	}
	assert.Equal(t, []string{"3kc", "3kd"}, rkeys)
	assert.Empty(t, page.Cursor)
}

func TestMemoryStoreValueIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	value := map[string]any{"nested": map[string]any{"n": 1}}
	_, err := store.PutRecord(ctx, "garden.spores.text", "3kaaa", value)
	require.NoError(t, err)

	// Mutating the caller's map after the write must not leak in.
	value["nested"].(map[string]any)["n"] = 99

	got, err := store.GetRecord(ctx, testOwner, "garden.spores.text", "3kaaa")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value["nested"].(map[string]any)["n"])

	// Mutating a returned record must not leak back into the store.
	got.Value["nested"].(map[string]any)["n"] = 42

	again, err := store.GetRecord(ctx, testOwner, "garden.spores.text", "3kaaa")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Value["nested"].(map[string]any)["n"])
}

func TestMemoryStoreContextCanceled(t *testing.T) {
	store := NewMemoryStore(testOwner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetRecord(ctx, testOwner, "garden.spores.text", "3kaaa")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.PutRecord(ctx, "garden.spores.text", "3kaaa", nil)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, store.DeleteRecord(ctx, "garden.spores.text", "3kaaa"), context.Canceled)

	_, err = store.ListRecords(ctx, testOwner, "garden.spores.text", ListOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(testOwner)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rkey := fmt.Sprintf("3k%03d", i)
			_, err := store.PutRecord(ctx, "garden.spores.spore", rkey, map[string]any{"i": i})
			assert.NoError(t, err)
			_, err = store.GetRecord(ctx, testOwner, "garden.spores.spore", rkey)
			assert.NoError(t, err)
			_, err = store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 5})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	page, err := store.ListRecords(ctx, testOwner, "garden.spores.spore", ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, page.Records, 10)
}
