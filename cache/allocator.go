package cache

// Allocation is the split of a memory budget between the hash tables, in megabytes.
type Allocation struct {
	TranspositionTableMB int
	PawnTableMB          int
}

// Allocate reserves max(1, total/128) MB for the pawn table and gives the rest to
// the transposition table. Both receive at least one megabyte.
func Allocate(totalMB int) Allocation {
	pawns := max(1, totalMB/128)
	return Allocation{
		TranspositionTableMB: max(1, totalMB-pawns),
		PawnTableMB:          pawns,
	}
}

// MB converts megabytes to bytes.
func MB(n int) uint64 { return uint64(n) * 1024 * 1024 }
