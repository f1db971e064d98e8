package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "dropdown:country", `[{"uuid":"1"}]`, time.Minute))

	val, ok, err := c.Get(ctx, "dropdown:country")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"uuid":"1"}]`, val)
}

func TestMemoryCache_Expired(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_ = c.Set(ctx, "dropdown:state:all", "a", 0)
	_ = c.Set(ctx, "dropdown:state:abc", "b", 0)
	_ = c.Set(ctx, "dropdown:city:all", "c", 0)

	require.NoError(t, c.DeletePrefix(ctx, "dropdown:state:"))

	_, ok, _ := c.Get(ctx, "dropdown:state:all")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "dropdown:state:abc")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "dropdown:city:all")
	assert.True(t, ok)
}
