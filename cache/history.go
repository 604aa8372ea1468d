package cache

import "sync/atomic"

const historyAgingDivisor = 16

// HistoryTable ranks quiet moves by how often (and how deep) they caused cutoffs.
// Cells and the running maximum are independent relaxed atomics, so a reader may see
// a maximum that lags behind a cell; Get clamps the result for that case.
type HistoryTable struct {
	table [64][64]atomic.Uint32
	max   atomic.Uint32
}

func NewHistoryTable() *HistoryTable {
	h := &HistoryTable{}
	h.max.Store(1)
	return h
}

// Add rewards the move from->to with depth squared.
func (h *HistoryTable) Add(from, to int, depth int) {
	value := h.table[from][to].Add(uint32(depth * depth))
	for {
		current := h.max.Load()
		if value <= current || h.max.CompareAndSwap(current, value) {
			return
		}
	}
}

// Punish lowers the score of a quiet move that failed to cut, flooring at zero.
func (h *HistoryTable) Punish(from, to int, depth int) {
	cell := &h.table[from][to]
	for {
		current := cell.Load()
		updated := uint32(0)
		if uint32(depth) <= current {
			updated = current - uint32(depth)
		}
		if cell.CompareAndSwap(current, updated) {
			return
		}
	}
}

// Get scales the cell to the range [0, limit].
func (h *HistoryTable) Get(from, to int, limit uint8) uint8 {
	total := h.max.Load()
	if total == 0 {
		total = 1
	}
	scaled := divCeil(uint64(h.table[from][to].Load())*uint64(limit), uint64(total))
	if scaled > uint64(limit) {
		scaled = uint64(limit)
	}
	return uint8(scaled)
}

// AgeValues divides every cell and the maximum by the aging divisor, rounding up.
func (h *HistoryTable) AgeValues() {
	for from := range h.table {
		for to := range h.table[from] {
			cell := &h.table[from][to]
			cell.Store(uint32(divCeil(uint64(cell.Load()), historyAgingDivisor)))
		}
	}
	h.max.Store(max(1, uint32(divCeil(uint64(h.max.Load()), historyAgingDivisor))))
}

func divCeil(a, b uint64) uint64 {
	return (a + b - 1) / b
}
