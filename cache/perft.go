package cache

import (
	"sync/atomic"
	"unsafe"
)

type perftEntry struct {
	key  atomic.Uint64
	data atomic.Uint64
}

// PerftTable memoizes leaf counts of perft subtrees. It is safe for concurrent use
// without locks: key and data are stored as two relaxed atomics, with the key XOR-ed
// by the data, so a torn pair written by two goroutines fails verification and reads
// as a miss.
type PerftTable struct {
	entries []perftEntry
}

func NewPerftTable(sizeBytes uint64) *PerftTable {
	n := slotCount(sizeBytes, uint64(unsafe.Sizeof(perftEntry{})))
	return &PerftTable{entries: make([]perftEntry, n)}
}

func (t *PerftTable) Len() int { return len(t.entries) }

// perftKey keeps the upper bits of the hash and stores the depth in the lowest four,
// so a shallower count is never returned for a deeper query.
func perftKey(hash uint64, depth int) uint64 {
	return hash&^0xF | uint64(depth)&0xF
}

func (t *PerftTable) Add(hash uint64, depth int, leafs uint64) {
	e := &t.entries[hash%uint64(len(t.entries))]
	e.key.Store(perftKey(hash, depth) ^ leafs)
	e.data.Store(leafs)
}

func (t *PerftTable) Get(hash uint64, depth int) (uint64, bool) {
	e := &t.entries[hash%uint64(len(t.entries))]
	key, data := e.key.Load(), e.data.Load()
	if key^data != perftKey(hash, depth) {
		return 0, false
	}
	return data, true
}

// Usage returns the percentage of filled slots among the first UsageResolution ones.
func (t *PerftTable) Usage() float64 {
	n := min(UsageResolution, len(t.entries))
	filled := 0
	for i := range t.entries[:n] {
		if t.entries[i].key.Load() != 0 && t.entries[i].data.Load() != 0 {
			filled++
		}
	}
	return percent(filled, n)
}
