package cache

import "unsafe"

type pawnEntry struct {
	key   uint16
	score int16
	used  bool
}

// PawnTable caches the pawn structure evaluation keyed by the pawn hash.
type PawnTable struct {
	entries []pawnEntry
}

func NewPawnTable(sizeBytes uint64) *PawnTable {
	n := slotCount(sizeBytes, uint64(unsafe.Sizeof(pawnEntry{})))
	return &PawnTable{entries: make([]pawnEntry, n)}
}

func (t *PawnTable) Len() int { return len(t.entries) }

func (t *PawnTable) Add(hash uint64, score int16) {
	t.entries[hash%uint64(len(t.entries))] = pawnEntry{key: keyOf(hash), score: score, used: true}
}

func (t *PawnTable) Get(hash uint64) (int16, bool) {
	e := t.entries[hash%uint64(len(t.entries))]
	if !e.used || e.key != keyOf(hash) {
		return 0, false
	}
	return e.score, true
}

func (t *PawnTable) Clear() {
	for i := range t.entries {
		t.entries[i] = pawnEntry{}
	}
}

func (t *PawnTable) Usage() float64 {
	n := min(UsageResolution, len(t.entries))
	filled := 0
	for _, e := range t.entries[:n] {
		if e.used {
			filled++
		}
	}
	return percent(filled, n)
}
