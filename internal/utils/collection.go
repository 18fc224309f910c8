package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// GetRandomItem picks one element uniformly at random.
// It returns the zero value and false for an empty slice.
func GetRandomItem[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// ShuffleArray returns a uniformly shuffled copy of items (Fisher-Yates).
// The input slice is not modified.
func ShuffleArray[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Grouped maps stringified keys to the items sharing them.
// Keys lists the groups in the order they were first seen.
type Grouped[T any] struct {
	Keys   []string
	Groups map[string][]T
}

// Get returns the items of one group
func (g Grouped[T]) Get(key string) []T {
	return g.Groups[key]
}

// Len returns the number of groups
func (g Grouped[T]) Len() int {
	return len(g.Keys)
}

// MarshalJSON encodes the groups as a JSON object in first-seen order
func (g Grouped[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(g.Groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupBy buckets items by key(item), keeping the relative order of items
// inside each group and the first-seen order of groups.
func GroupBy[T any, K comparable](items []T, key func(T) K) Grouped[T] {
	g := Grouped[T]{Groups: make(map[string][]T)}
	for _, item := range items {
		k := fmt.Sprint(key(item))
		if _, ok := g.Groups[k]; !ok {
			g.Keys = append(g.Keys, k)
		}
		g.Groups[k] = append(g.Groups[k], item)
	}
	return g
}

// UniqueBy keeps the first item for each distinct key, in input order
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}
