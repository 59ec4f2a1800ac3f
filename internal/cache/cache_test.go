// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/taxogo/internal/item"
)

func TestCache_StoreOnce(t *testing.T) {
	c := New()
	assert.False(t, c.Has("magic_place"))

	first := item.Items{"cueva": "one"}
	assert.True(t, c.Store("magic_place", first))
	assert.True(t, c.Has("magic_place"))

	// A second store must not replace the committed items.
	assert.False(t, c.Store("magic_place", item.Items{"other": "two"}))

	got, ok := c.Get("magic_place")
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestCache_GetMissing(t *testing.T) {
	c := New()
	got, ok := c.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCache_StoreNilIsEmpty(t *testing.T) {
	c := New()
	require.True(t, c.Store("empty", nil))

	got, ok := c.Get("empty")
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCache_Keys(t *testing.T) {
	c := New()
	c.Store("zone", item.Items{})
	c.Store("area", item.Items{})

	assert.Equal(t, []string{"area", "zone"}, c.Keys())
	assert.Equal(t, 2, c.Len())
}

func TestCache_ConcurrentStore(t *testing.T) {
	c := New()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		stored int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if c.Store("k", item.Items{"id": fmt.Sprint(i)}) {
				mu.Lock()
				stored++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, stored)
	assert.Equal(t, 1, c.Len())
}
