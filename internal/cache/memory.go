// Package cache provides domain.AudioCache implementations.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 512
	DefaultTTL  = 24 * time.Hour
)

// Memory is an in-process audio cache bounded by entry count and age.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemory creates a cache holding at most size entries, each for at most ttl.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, text string) ([]byte, bool, error) {
	audio, ok := m.lru.Get(text)
	return audio, ok, nil
}

func (m *Memory) Set(_ context.Context, text string, audio []byte) error {
	m.lru.Add(text, audio)
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.lru.Len()
}

func (m *Memory) Close() error {
	m.lru.Purge()
	return nil
}
