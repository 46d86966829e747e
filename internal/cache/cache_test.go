package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetExpires(t *testing.T) {
	now := time.Unix(1700000000, 0)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("products:list:p1", []byte("page"))
	got, ok := c.Get("products:list:p1")
	require.True(t, ok)
	assert.Equal(t, []byte("page"), got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("products:list:p1")
	assert.False(t, ok)

	c.removeExpired()
	assert.Zero(t, c.Size())
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	c.Set("products:list:p1", []byte("1"))
	c.Set("products:list:p2", []byte("2"))
	c.Set("product:DV1", []byte("3"))

	c.DeleteByPrefix("products:list:")
	assert.Equal(t, 1, c.Size())
	_, ok := c.Get("product:DV1")
	assert.True(t, ok)
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New(time.Minute)
	require.NoError(t, c.Marshal("k", map[string]int{"page": 2}))

	var out map[string]int
	found, err := c.Unmarshal("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, out["page"])

	found, err = c.Unmarshal("missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	c := New(time.Nanosecond)
	c.Set("k", []byte("v"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
