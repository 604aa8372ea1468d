// Package cache implements the fixed-capacity hash tables shared by search and perft.
// Every table is preallocated from a memory budget, indexed by hash modulo capacity,
// and overwrites slots unconditionally; a 16-bit key fragment rejects aliased slots.
package cache

import (
	"unsafe"

	"github.com/Tearth/Inanis-sub001/board"
)

// ScoreType tells how a stored score relates to the true score of the position.
type ScoreType uint8

const (
	InvalidScore ScoreType = iota
	ExactScore
	// AlphaScore is an upper bound: every move failed low.
	AlphaScore
	// BetaScore is a lower bound: a move failed high.
	BetaScore
)

// UsageResolution is the number of leading slots sampled by the Usage diagnostics.
const UsageResolution = 10000

type TTEntry struct {
	Key      uint16
	Score    int16
	BestMove board.Move
	Depth    int8
	Type     ScoreType
}

// TranspositionTable memoizes search results keyed by position hash.
type TranspositionTable struct {
	entries []TTEntry
}

func keyOf(hash uint64) uint16 { return uint16(hash >> 48) }

// slotCount converts a byte budget into a slot count of at least one.
func slotCount(bytes, entrySize uint64) uint64 {
	if entrySize == 0 {
		entrySize = 1
	}
	n := bytes / entrySize
	if n == 0 {
		n = 1
	}
	return n
}

// NewTranspositionTable allocates a table occupying about sizeBytes of memory.
func NewTranspositionTable(sizeBytes uint64) *TranspositionTable {
	n := slotCount(sizeBytes, uint64(unsafe.Sizeof(TTEntry{})))
	return &TranspositionTable{entries: make([]TTEntry, n)}
}

func (t *TranspositionTable) Len() int { return len(t.entries) }

// Add stores an entry for hash, replacing whatever the slot held.
func (t *TranspositionTable) Add(hash uint64, score int16, bestMove board.Move, depth int8, scoreType ScoreType) {
	t.entries[hash%uint64(len(t.entries))] = TTEntry{
		Key:      keyOf(hash),
		Score:    score,
		BestMove: bestMove,
		Depth:    depth,
		Type:     scoreType,
	}
}

// Get returns the entry stored for hash. A slot holding another position is a miss.
func (t *TranspositionTable) Get(hash uint64) (TTEntry, bool) {
	e := t.entries[hash%uint64(len(t.entries))]
	if e.Type == InvalidScore || e.Key != keyOf(hash) {
		return TTEntry{}, false
	}
	return e, true
}

// GetBestMove returns only the stored best move, NoMove on a miss.
func (t *TranspositionTable) GetBestMove(hash uint64) board.Move {
	e, ok := t.Get(hash)
	if !ok {
		return board.NoMove
	}
	return e.BestMove
}

func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}

// Usage returns the percentage of filled slots among the first UsageResolution ones.
func (t *TranspositionTable) Usage() float64 {
	n := min(UsageResolution, len(t.entries))
	filled := 0
	for _, e := range t.entries[:n] {
		if e.Type != InvalidScore {
			filled++
		}
	}
	return percent(filled, n)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
