// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a very simple random-replacement cache to memoize
// expensive operations.
package cache

import (
	"sync"
)

// DefaultSize is the default maximum number of entries of a cache.
const DefaultSize = 1 << 10

// Cache is a simple random-replacement cache suitable to memoize expensive
// operations.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of entries of the cache. If it is zero,
	// DefaultSize is used.
	//
	// MaxSize is not safe to mutate concurrently with calls to Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]V
}

// Get the element associated with k from the cache, using fill to populate
// missing elements.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// another goroutine filled the cache in the meantime
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	max := c.MaxSize
	if max == 0 {
		max = DefaultSize
	}
	for k := range c.m {
		if len(c.m) <= max {
			break
		}
		delete(c.m, k)
	}
	return nv
}

// Flush removes all elements from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
