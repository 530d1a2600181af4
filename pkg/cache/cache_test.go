package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string], *clock) {
	clk := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[string](capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRU(t *testing.T) {
	testCases := []struct {
		name    string
		actions func(t *testing.T, c *LRU[string], clk *clock)
	}{
		{
			name: "set and get within ttl",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "1", v)
			},
		},
		{
			name: "expired entry is a miss",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				clk.t = clk.t.Add(time.Minute + time.Second)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name: "evicts least recently used",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Get("a")
				c.Set("c", "3")

				_, ok := c.Get("b")
				assert.False(t, ok)
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name: "overwrite refreshes ttl",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				clk.t = clk.t.Add(50 * time.Second)
				c.Set("a", "2")
				clk.t = clk.t.Add(50 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", v)
			},
		},
		{
			name: "delete and stats",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				c.Get("a")
				c.Delete("a")
				c.Get("a")

				hits, misses := c.Stats()
				assert.Equal(t, uint64(1), hits)
				assert.Equal(t, uint64(1), misses)
			},
		},
		{
			name: "delete expired",
			actions: func(t *testing.T, c *LRU[string], clk *clock) {
				c.Set("a", "1")
				clk.t = clk.t.Add(30 * time.Second)
				c.Set("b", "2")
				clk.t = clk.t.Add(45 * time.Second)

				assert.Equal(t, 1, c.DeleteExpired())
				assert.Equal(t, 1, c.Len())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clk := newTestLRU(2, time.Minute)
			tc.actions(t, c, clk)
		})
	}
}

func TestLRU_RunJanitorStops(t *testing.T) {
	c := NewLRU[int](1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() { done <- c.RunJanitor(ctx, time.Millisecond) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
