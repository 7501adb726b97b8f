package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Lookup(ctx, "S100")
	assert.ErrorIs(t, err, ErrNoSession)

	loginTime := time.Now()
	require.NoError(t, store.Open(ctx, "S100", loginTime))

	got, err := store.Lookup(ctx, "S100")
	require.NoError(t, err)
	assert.Equal(t, loginTime, got)

	require.NoError(t, store.Close(ctx, "S100"))
	_, err = store.Lookup(ctx, "S100")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, store.Close(ctx, "S100"), ErrNoSession)
}

func TestMemoryStoreReloginOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := time.Now().Add(-time.Hour)
	second := time.Now()
	require.NoError(t, store.Open(ctx, "S100", first))
	require.NoError(t, store.Open(ctx, "S100", second))

	got, err := store.Lookup(ctx, "S100")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			card := fmt.Sprintf("S%03d", i)
			_ = store.Open(ctx, card, time.Now())
			_, _ = store.Lookup(ctx, card)
			_ = store.Close(ctx, card)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := store.Lookup(ctx, fmt.Sprintf("S%03d", i))
		assert.ErrorIs(t, err, ErrNoSession)
	}
}
