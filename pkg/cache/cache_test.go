package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clk *clock)
	}{
		{
			name:     "set and get within ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("ORD-1", []byte("1"))
				clk.advance(59 * time.Second)

				v, ok := c.Get("ORD-1")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "expired entry is a miss and is dropped",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("ORD-1", []byte("1"))
				clk.advance(time.Minute + time.Second)

				_, ok := c.Get("ORD-1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "least recently used is evicted over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b was least recently used")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 2, c.Size())
			},
		},
		{
			name:     "overwrite refreshes value and ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("ORD-1", []byte("pending"))
				clk.advance(40 * time.Second)
				c.Set("ORD-1", []byte("confirmed"))
				clk.advance(40 * time.Second)

				v, ok := c.Get("ORD-1")
				require.True(t, ok)
				assert.Equal(t, "confirmed", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("ORD-1", []byte("order"))
				c.Delete("ORD-1")
				c.Delete("missing")

				_, ok := c.Get("ORD-1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "sweep drops only expired entries",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("old-1", []byte("1"))
				c.Set("old-2", []byte("2"))
				clk.advance(45 * time.Second)
				c.Set("fresh", []byte("3"))
				clk.advance(30 * time.Second)

				assert.Equal(t, 2, c.sweep())
				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("fresh")
				assert.True(t, ok)
			},
		},
		{
			name:     "zero capacity holds one entry",
			capacity: 0,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				assert.Equal(t, 1, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl)
			c.now = clk.now
			tt.actions(t, c, clk)
		})
	}
}

func TestLRUCache_StartStopsWithContext(t *testing.T) {
	c := NewLRUCache(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
