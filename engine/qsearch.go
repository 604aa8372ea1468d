package engine

import "github.com/Tearth/Inanis-sub001/board"

// qsearch resolves captures below the horizon so that positions are not judged in
// the middle of an exchange. The stand-pat score is a lower bound for the side to move.
func (e *Engine) qsearch(b *board.Board, ply int, alpha, beta int16) int16 {
	if e.aborted {
		return DrawScore
	}
	e.countNode(true, ply)

	color := b.ActiveColor()
	if !b.HasKing(color) {
		return -CheckmateScore + int16(ply)
	}

	standPat := e.Evaluate(b)
	if standPat >= beta {
		e.stats.QBetaCutoffs++
		return beta
	}
	if ply >= MaxDepth-1 {
		return standPat
	}
	alpha = Max(alpha, standPat)

	p := &e.params
	var moves [board.MaxMovesCount]board.Move
	var scores [board.MaxMovesCount]int16
	count := b.GetCaptures(&moves)
	e.assignCaptureScores(b, moves[:count], scores[:count])

	for i := 0; i < count; i++ {
		move, moveScore := SortNextMove(moves[:], scores[:], i, count)

		if moveScore < p.QScorePruningThreshold {
			e.stats.QScorePrunes++
			break
		}
		if standPat+moveScore+p.QFutilityMargin < alpha {
			e.stats.QFutilityPrunes++
			break
		}

		b.MakeMove(move)
		if b.IsKingChecked(color) {
			b.UndoMove(move)
			continue
		}
		score := -e.qsearch(b, ply+1, -beta, -alpha)
		b.UndoMove(move)

		if e.aborted {
			return DrawScore
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				e.stats.QBetaCutoffs++
				return beta
			}
		}
	}
	return alpha
}
