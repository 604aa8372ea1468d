// Package perft counts the leaves of the legal move tree to a fixed depth. The counts
// are compared against published values to validate move generation and make/undo.
package perft

import "github.com/Tearth/Inanis-sub001/board"

// Config selects the optional behaviour of the perft strategies.
type Config struct {
	// CheckIntegrity recomputes hashes and material at every node and panics on a mismatch.
	CheckIntegrity bool
	// HashSizeMB is the size of the shared perft table used by RunFast.
	HashSizeMB int
	// Threads is the worker count of RunFast.
	Threads int
}

// DefaultConfig is the configuration used by the perft command.
func DefaultConfig() Config {
	return Config{HashSizeMB: 64, Threads: 1}
}

// Result holds the leaf count and the kinds of the moves leading to the leaves.
type Result struct {
	Leafs      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

type counter struct {
	cfg    Config
	result Result
}

// Run walks the tree sequentially and collects leaf statistics. The board is left
// as it was found.
func Run(b *board.Board, depth int, cfg Config) Result {
	c := counter{cfg: cfg}
	if depth <= 0 {
		c.result.Leafs = 1
		return c.result
	}
	c.count(b, depth)
	return c.result
}

func (c *counter) count(b *board.Board, depth int) {
	if c.cfg.CheckIntegrity {
		b.CheckIntegrity()
	}

	var moves [board.MaxMovesCount]board.Move
	n := b.GetMoves(&moves)
	color := b.ActiveColor()

	for _, m := range moves[:n] {
		b.MakeMove(m)
		if !b.IsKingChecked(color) {
			if depth == 1 {
				c.recordLeaf(b, m, color)
			} else {
				c.count(b, depth-1)
			}
		}
		b.UndoMove(m)
	}
}

func (c *counter) recordLeaf(b *board.Board, m board.Move, mover board.Color) {
	if c.cfg.CheckIntegrity {
		b.CheckIntegrity()
	}

	c.result.Leafs++
	if m.IsCapture() {
		c.result.Captures++
	}
	if m.IsEnPassant() {
		c.result.EnPassants++
	}
	if m.IsCastling() {
		c.result.Castles++
	}
	if m.IsPromotion() {
		c.result.Promotions++
	}
	if b.IsKingChecked(mover.Opponent()) {
		c.result.Checks++
	}
}

// countLeafs is the plain recursion shared by the divided and fast strategies.
func countLeafs(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves [board.MaxMovesCount]board.Move
	n := b.GetMoves(&moves)
	color := b.ActiveColor()

	var leafs uint64
	for _, m := range moves[:n] {
		b.MakeMove(m)
		if !b.IsKingChecked(color) {
			leafs += countLeafs(b, depth-1)
		}
		b.UndoMove(m)
	}
	return leafs
}
