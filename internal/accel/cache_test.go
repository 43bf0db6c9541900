package accel

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	h := Hash([]byte("hello"))
	assert.Len(t, h, 64)
	assert.Equal(t, h, Hash([]byte("hello")))
	assert.NotEqual(t, h, Hash([]byte("world")))
}

func TestClassListKey_OrderMatters(t *testing.T) {
	assert.NotEqual(t, ClassListKey("", []string{"p-4", "m-2"}), ClassListKey("", []string{"m-2", "p-4"}))
	assert.Equal(t, ClassListKey("", []string{"p-4"}), ClassListKey("", []string{"p-4"}))
	assert.NotEqual(t, ClassListKey("a", []string{"p-4"}), ClassListKey("b", []string{"p-4"}))
}

// exerciseCache runs the behaviour every Cache must share.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v1"), 0))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data)

	require.NoError(t, c.Set(ctx, "k", []byte("v2"), time.Hour))
	data, _, _ = c.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), data)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	require.NoError(t, c.Delete(ctx, "k"))
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestMemoryCache(t *testing.T) {
	exerciseCache(t, NewMemoryCache(4))
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	_, ok, _ := c.Get(ctx, "a") // a is now most recent
	require.True(t, ok)
	require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))

	assert.Equal(t, 2, c.Len())
	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_CopiesData(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(1)
	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	data, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(data))
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	exerciseCache(t, c)
}

func TestFileCache_ExpiredAndCorrupt(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "old", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)
	_, ok, err := c.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoFileExists(t, c.path("old"))

	require.NoError(t, c.Set(ctx, "bad", []byte("v"), 0))
	require.NoError(t, os.WriteFile(c.path("bad"), []byte("{not json"), 0o600))
	_, ok, err = c.Get(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TAILGEN_REDIS_ADDR")
	if addr == "" {
		t.Skip("TAILGEN_REDIS_ADDR not set")
	}

	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr, Prefix: "tailgen-test:"})
	require.NoError(t, err)
	defer c.Close()
	exerciseCache(t, c)
}
