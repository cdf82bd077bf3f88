package models

import (
	"encoding/json"
	"sort"
)

// OrderedCounts is a counter that remembers the order in which keys were first seen.
// Ranking ties (Mode, Top) are broken by that order, so results never depend on map
// iteration order.
//
// The zero value is ready to use.
type OrderedCounts[K comparable] struct {
	keys   []K
	counts map[K]int64
}

type orderedCount[K comparable] struct {
	Key   K     `json:"key"`
	Count int64 `json:"count"`
}

func NewOrderedCounts[K comparable]() *OrderedCounts[K] {
	return &OrderedCounts[K]{counts: make(map[K]int64)}
}

// Inc adds one to key.
func (c *OrderedCounts[K]) Inc(key K) {
	c.Add(key, 1)
}

// Add adds n to key. Non-positive n is ignored so that every stored key keeps a count >= 1.
func (c *OrderedCounts[K]) Add(key K, n int64) {
	if n <= 0 {
		return
	}
	if c.counts == nil {
		c.counts = make(map[K]int64)
	}
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

func (c *OrderedCounts[K]) Get(key K) int64 {
	return c.counts[key]
}

func (c *OrderedCounts[K]) Len() int {
	return len(c.keys)
}

// Keys returns the keys in first-seen order.
func (c *OrderedCounts[K]) Keys() []K {
	out := make([]K, len(c.keys))
	copy(out, c.keys)
	return out
}

// Merge adds every count of other into c. Keys unseen by c are appended in other's order.
func (c *OrderedCounts[K]) Merge(other *OrderedCounts[K]) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		c.Add(key, other.counts[key])
	}
}

// Mode returns the key with the highest count, ties going to the first seen key.
func (c *OrderedCounts[K]) Mode() (K, bool) {
	var best K
	var bestCount int64
	found := false
	for _, key := range c.keys {
		if n := c.counts[key]; !found || n > bestCount {
			best, bestCount, found = key, n, true
		}
	}
	return best, found
}

// Top returns up to n keys ordered by descending count, ties in first-seen order.
func (c *OrderedCounts[K]) Top(n int) []K {
	if n <= 0 {
		return []K{}
	}
	ranked := c.Keys()
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Clone returns an independent copy.
func (c *OrderedCounts[K]) Clone() *OrderedCounts[K] {
	out := NewOrderedCounts[K]()
	out.Merge(c)
	return out
}

// MarshalJSON encodes the counter as an ordered array of {"key","count"} pairs.
func (c *OrderedCounts[K]) MarshalJSON() ([]byte, error) {
	pairs := make([]orderedCount[K], 0, len(c.keys))
	for _, key := range c.keys {
		pairs = append(pairs, orderedCount[K]{Key: key, Count: c.counts[key]})
	}
	return json.Marshal(pairs)
}

func (c *OrderedCounts[K]) UnmarshalJSON(data []byte) error {
	var pairs []orderedCount[K]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	c.keys = nil
	c.counts = make(map[K]int64, len(pairs))
	for _, p := range pairs {
		c.Add(p.Key, p.Count)
	}
	return nil
}
