package perft

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Tearth/Inanis-sub001/board"
)

// Branch is the leaf count below one root move.
type Branch struct {
	Move  board.Move
	Leafs uint64
}

// RunDivided counts every root move separately. Branches are sorted by move text so
// that the output lines up with other engines' divide output.
func RunDivided(b *board.Board, depth int) []Branch {
	if depth <= 0 {
		return nil
	}

	var branches []Branch
	for _, m := range b.GetLegalMoves() {
		b.MakeMove(m)
		branches = append(branches, Branch{Move: m, Leafs: countLeafs(b, depth-1)})
		b.UndoMove(m)
	}

	slices.SortFunc(branches, func(x, y Branch) int {
		return strings.Compare(x.Move.String(), y.Move.String())
	})
	return branches
}

// Total sums the leaf counts of all branches.
func Total(branches []Branch) uint64 {
	var total uint64
	for _, br := range branches {
		total += br.Leafs
	}
	return total
}
