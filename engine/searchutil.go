package engine

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Tearth/Inanis-sub001/board"
)

// principalVariation follows best moves through the transposition table. Moves that
// are not legal in the reached position end the line, as do repeated positions.
func (e *Engine) principalVariation(b *board.Board, maxLength int) []board.Move {
	var pv []board.Move
	line := b.Clone()

	for len(pv) < maxLength {
		move := e.tt.GetBestMove(line.Hash())
		if move == board.NoMove || !slices.Contains(line.GetLegalMoves(), move) {
			break
		}
		line.MakeMove(move)
		pv = append(pv, move)

		if line.IsThreefoldRepetitionDraw() {
			break
		}
	}
	return pv
}

// fallbackMove returns any legal move when the search was stopped before finishing
// its first iteration.
func (e *Engine) fallbackMove(b *board.Board) board.Move {
	moves := b.GetLegalMoves()
	if len(moves) == 0 {
		return board.NoMove
	}
	return moves[0]
}

func (e *Engine) printInfo(r Result) {
	ms := r.Time.Milliseconds()
	nodes := e.stats.TotalNodes()
	nps := uint64(float64(nodes) / Max(r.Time.Seconds(), 0.001))

	fmt.Fprintf(e.info, "info depth %d seldepth %d score %s nodes %d nps %d time %d hashfull %d pv %s\n",
		r.Depth, e.stats.MaxPly, getMateOrCPScore(r.Score), nodes, nps, ms,
		int(e.tt.Usage()*10), pvString(r.PV))
}

func pvString(pv []board.Move) string {
	var sb strings.Builder
	for i, m := range pv {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

// getMateOrCPScore formats a score as "cp X", or "mate N" with N in moves.
func getMateOrCPScore(score int16) string {
	if IsScoreNearCheckmate(score) {
		plies := int(CheckmateScore - abs(score))
		moves := (plies + 1) / 2
		if score < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", score)
}
