package exif

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes decoded profiles by block content. Every call returns a
// private copy, so callers may mutate what they get.
type Cache struct {
	dec *Decoder
	lru *lru.Cache[[sha256.Size]byte, *Profile]
}

// NewCache wraps dec with an LRU of at most size profiles
func NewCache(dec *Decoder, size int) (*Cache, error) {
	if dec == nil {
		return nil, nilArgument("dec")
	}
	c, err := lru.New[[sha256.Size]byte, *Profile](size)
	if err != nil {
		return nil, fmt.Errorf("create profile cache: %w", err)
	}
	return &Cache{dec: dec, lru: c}, nil
}

// Decode returns the cached profile for data, decoding it on a miss.
// Diagnostics are not cached; use the Decoder directly to see them.
func (c *Cache) Decode(data []byte) *Profile {
	key := sha256.Sum256(data)
	if p, ok := c.lru.Get(key); ok {
		return p.Clone()
	}
	p, _ := c.dec.Decode(data)
	c.lru.Add(key, p)
	return p.Clone()
}

// Len returns the number of cached profiles
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached profile
func (c *Cache) Purge() {
	c.lru.Purge()
}
