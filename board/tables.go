package board

// DefaultSeed is the Zobrist seed used by NewDefaultTables.
const DefaultSeed uint64 = 0xC0DE

// Tables bundles every precomputed lookup a Board needs: jump and box patterns,
// magic slider tables and Zobrist keys. A Tables value is immutable once built and
// may be shared by any number of boards and goroutines.
type Tables struct {
	patterns *patterns
	rook     [64]magicEntry
	bishop   [64]magicEntry
	zobrist  zobristKeys
}

// NewTables builds all lookup tables. Boards created with different seeds produce
// different hashes and must not share hash-table entries.
func NewTables(seed uint64) *Tables {
	p := newPatterns()
	rook, bishop := newMagicTables(p)
	return &Tables{
		patterns: p,
		rook:     rook,
		bishop:   bishop,
		zobrist:  newZobristKeys(seed),
	}
}

// NewDefaultTables builds tables with DefaultSeed.
func NewDefaultTables() *Tables { return NewTables(DefaultSeed) }

// RookMoves returns the rook attacks from sq given the board occupancy.
func (t *Tables) RookMoves(occupancy uint64, sq int) uint64 {
	e := &t.rook[sq]
	return e.attacks[e.index(occupancy)]
}

// BishopMoves returns the bishop attacks from sq given the board occupancy.
func (t *Tables) BishopMoves(occupancy uint64, sq int) uint64 {
	e := &t.bishop[sq]
	return e.attacks[e.index(occupancy)]
}

// QueenMoves returns the union of rook and bishop attacks.
func (t *Tables) QueenMoves(occupancy uint64, sq int) uint64 {
	return t.RookMoves(occupancy, sq) | t.BishopMoves(occupancy, sq)
}

func (t *Tables) KnightMoves(sq int) uint64 { return t.patterns.jumps[sq] }

func (t *Tables) KingMoves(sq int) uint64 { return t.patterns.box[sq] }

// PawnAttacks returns the squares a pawn of color c standing on sq attacks.
func (t *Tables) PawnAttacks(c Color, sq int) uint64 { return t.patterns.pawnAttacks[c][sq] }
