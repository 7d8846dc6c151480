package emu

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/sarchlab/cusim/insts"
)

// CacheKey identifies a computation by instruction and operand values.
type CacheKey struct {
	Op insts.Op
	A  float64
	B  float64
}

// CacheEntry is a single memoized result.
type CacheEntry struct {
	Key    CacheKey
	Result float64
}

// slot is the map key of a cache entry. Operands are stored as canonical
// bit patterns so that every NaN matches every other NaN and -0 matches 0.
type slot struct {
	op   insts.Op
	a, b uint64
}

var canonicalNaN = math.Float64bits(math.NaN())

func operandBits(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return canonicalNaN
	case v == 0:
		return 0
	}
	return math.Float64bits(v)
}

func (k CacheKey) slot() slot {
	return slot{op: k.Op, a: operandBits(k.A), b: operandBits(k.B)}
}

// OpCache memoizes operation results keyed by instruction and operand
// values. Entries are never evicted and, once stored, never change.
// All NaN operands are treated as the same value.
type OpCache struct {
	entries map[slot]CacheEntry
}

// NewOpCache creates an empty operation cache.
func NewOpCache() *OpCache {
	return &OpCache{
		entries: make(map[slot]CacheEntry),
	}
}

// Lookup returns the cached result for key.
func (c *OpCache) Lookup(key CacheKey) (float64, bool) {
	e, ok := c.entries[key.slot()]
	return e.Result, ok
}

// Insert stores result under key unless the key is already present.
// It returns false if an entry existed.
func (c *OpCache) Insert(key CacheKey, result float64) bool {
	s := key.slot()
	if _, ok := c.entries[s]; ok {
		return false
	}
	c.entries[s] = CacheEntry{Key: key, Result: result}
	return true
}

// Len returns the number of cached entries.
func (c *OpCache) Len() int {
	return len(c.entries)
}

// All iterates over the cache in no particular order.
func (c *OpCache) All() iter.Seq2[CacheKey, float64] {
	return func(yield func(CacheKey, float64) bool) {
		for _, e := range c.entries {
			if !yield(e.Key, e.Result) {
				return
			}
		}
	}
}

// Entries returns all cached entries ordered by opcode, then operands.
func (c *OpCache) Entries() []CacheEntry {
	out := make([]CacheEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}

	slices.SortFunc(out, func(x, y CacheEntry) int {
		return cmp.Or(
			cmp.Compare(x.Key.Op, y.Key.Op),
			cmp.Compare(x.Key.A, y.Key.A),
			cmp.Compare(x.Key.B, y.Key.B),
		)
	})
	return out
}

// Reset removes all entries.
func (c *OpCache) Reset() {
	clear(c.entries)
}
