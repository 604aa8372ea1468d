package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/cache"
)

// Scores are centipawns. Mate is CheckmateScore minus the distance in plies.
const (
	MaxScore       int16 = 32000
	CheckmateScore int16 = 31900
	DrawScore      int16 = 0

	// MaxDepth bounds both iterative deepening and the ply reached by any line.
	MaxDepth = cache.MaxPly

	stopCheckInterval = 8192
)

// IsScoreNearCheckmate reports whether score encodes a forced mate for either side.
func IsScoreNearCheckmate(score int16) bool {
	return abs(score) >= CheckmateScore-MaxDepth
}

// Result is the outcome of the last fully searched iteration.
type Result struct {
	BestMove   board.Move
	Score      int16
	Depth      int
	PV         []board.Move
	Statistics Statistics
	Time       time.Duration
}

// Search runs iterative deepening on b until a limit is hit or ctx is cancelled and
// returns the best move found. The board is restored before returning.
func (e *Engine) Search(ctx context.Context, b *board.Board, limits Limits) Result {
	start := time.Now()
	budget := allocateTime(b, limits)

	e.ctx = ctx
	e.stats = Statistics{}
	e.aborted = false
	e.nodeLimit = limits.Nodes
	e.rootBestMove = board.NoMove
	e.deadline = time.Time{}
	if budget > 0 {
		e.deadline = start.Add(budget)
	}
	e.killers.Clear()

	maxDepth := MaxDepth - 1
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	log.Debug().
		Str("fen", b.ToFEN()).
		Int("depth", maxDepth).
		Dur("budget", budget).
		Msg("search started")

	var result Result
	var score int16
	for depth := 1; depth <= maxDepth; depth++ {
		score = e.aspiration(b, int8(depth), score)
		if e.aborted {
			break
		}

		result.Depth = depth
		result.Score = score
		result.BestMove = e.rootBestMove
		result.PV = e.principalVariation(b, depth)
		result.Time = time.Since(start)
		e.printInfo(result)

		log.Debug().
			Int("depth", depth).
			Int16("score", score).
			Uint64("nodes", e.stats.TotalNodes()).
			Float64("hashfull", e.tt.Usage()).
			Msg("iteration finished")

		if IsScoreNearCheckmate(score) && depth >= int(CheckmateScore-abs(score)) {
			break
		}
		// Another iteration costs more than everything searched so far
		if limits.MoveTime == 0 && budget > 0 && time.Since(start) > budget/2 {
			break
		}
	}

	if result.BestMove == board.NoMove {
		result.BestMove = e.fallbackMove(b)
	}
	result.Statistics = e.stats
	result.Time = time.Since(start)
	e.history.AgeValues()

	log.Info().
		Str("bestmove", result.BestMove.String()).
		Int("depth", result.Depth).
		Uint64("nodes", e.stats.TotalNodes()).
		Dur("time", result.Time).
		Bool("aborted", e.aborted).
		Msg("search finished")

	return result
}

// aspiration searches the root with a narrow window around the previous score and
// widens it on every fail until it becomes the full window.
func (e *Engine) aspiration(b *board.Board, depth int8, previous int16) int16 {
	p := &e.params
	if depth < p.AspirationMinDepth || IsScoreNearCheckmate(previous) {
		return e.search(b, depth, 0, -MaxScore, MaxScore, board.NoMove, true, false)
	}

	delta := p.AspirationDelta
	alpha := Max(previous-delta, -MaxScore)
	beta := Min(previous+delta, MaxScore)
	for {
		score := e.search(b, depth, 0, alpha, beta, board.NoMove, true, false)
		if e.aborted || (score > alpha && score < beta) {
			return score
		}

		delta *= 2
		if delta >= p.AspirationMaxWidth {
			alpha, beta = -MaxScore, MaxScore
			continue
		}
		if score <= alpha {
			alpha = Max(score-delta, -MaxScore)
		} else {
			beta = Min(score+delta, MaxScore)
		}
	}
}

// search is the fail-hard negamax with principal variation search.
// previous is the move that led to this node, NoMove at the root and after a null move.
func (e *Engine) search(b *board.Board, depth int8, ply int, alpha, beta int16, previous board.Move, pv, allowNull bool) int16 {
	if e.aborted {
		return DrawScore
	}
	e.countNode(false, ply)

	color := b.ActiveColor()
	if !b.HasKing(color) {
		return -CheckmateScore + int16(ply)
	}

	root := ply == 0
	if !root && (b.IsFiftyMoveRuleDraw() || b.IsRepetitionDraw(2) || b.IsInsufficientMaterialDraw()) {
		return DrawScore
	}
	if ply >= MaxDepth-1 {
		return e.Evaluate(b)
	}

	inCheck := b.IsKingChecked(color)
	if inCheck {
		depth++
	}
	if depth <= 0 {
		e.stats.Leafs++
		return e.qsearch(b, ply, alpha, beta)
	}

	p := &e.params
	hashMove := board.NoMove
	if entry, ok := e.tt.Get(b.Hash()); ok {
		e.stats.TTHits++
		hashMove = entry.BestMove

		if !root && entry.Depth >= depth {
			score := scoreFromTT(entry.Score, ply)
			switch entry.Type {
			case cache.AlphaScore:
				beta = Min(beta, score)
			case cache.BetaScore:
				alpha = Max(alpha, score)
			case cache.ExactScore:
				if !pv {
					return score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	} else {
		e.stats.TTMisses++
	}

	// Internal iterative reduction
	if depth >= p.IIRMinDepth && hashMove == board.NoMove {
		depth--
	}

	var eval int16
	if !pv && !inCheck {
		eval = e.Evaluate(b)

		if depth >= p.RazoringMinDepth && depth <= p.RazoringMaxDepth && eval+p.razoringMargin(depth) <= alpha {
			score := e.qsearch(b, ply, alpha, beta)
			if score <= alpha {
				e.stats.RazoringAccepted++
				return score
			}
			e.stats.RazoringRejected++
		}

		if depth >= p.SNMPMinDepth && depth <= p.SNMPMaxDepth && !IsScoreNearCheckmate(beta) {
			if eval-p.snmpMargin(depth) >= beta {
				e.stats.SNMPAccepted++
				return beta
			}
			e.stats.SNMPRejected++
		}

		if allowNull && depth >= p.NMPMinDepth && b.GamePhase() > p.NMPMinGamePhase &&
			eval+p.NMPMargin >= beta && !b.PawnsAndKingsOnly(color) {
			r := p.nmpReduction(depth)

			b.MakeNullMove()
			score := -e.search(b, depth-1-r, ply+1, -beta, -beta+1, board.NoMove, false, false)
			b.UndoNullMove()

			if score >= beta {
				e.stats.NMPAccepted++
				return beta
			}
			e.stats.NMPRejected++
		}
	}

	var moves [board.MaxMovesCount]board.Move
	var scores [board.MaxMovesCount]int16
	count := b.GetMoves(&moves)
	e.assignMoveScores(b, moves[:count], scores[:count], hashMove, previous, ply)

	var quiets [board.MaxMovesCount]board.Move
	quietsCount := 0

	originalAlpha := alpha
	bestMove := board.NoMove
	bestScore := -MaxScore
	legalMoves := 0

	for i := 0; i < count; i++ {
		move, moveScore := SortNextMove(moves[:], scores[:], i, count)

		if !pv && !inCheck && legalMoves > 0 && depth >= p.LMPMinDepth && depth <= p.LMPMaxDepth &&
			i >= p.lmpMoveIndex(depth) && moveScore <= p.LMPMaxScore {
			e.stats.LMPAccepted++
			break
		}

		b.MakeMove(move)
		if b.IsKingChecked(color) {
			b.UndoMove(move)
			continue
		}
		legalMoves++

		var score int16
		if legalMoves == 1 {
			score = -e.search(b, depth-1, ply+1, -beta, -alpha, move, pv, true)
		} else {
			var r int8
			minIndex := p.LMRMinMoveIndex
			if pv {
				minIndex = p.LMRPVMinMoveIndex
			}
			if depth >= p.LMRMinDepth && !inCheck && moveScore <= p.LMRMaxScore && i >= minIndex {
				r = Max(0, p.lmrReduction(pv, i))
				e.stats.LMRReductions++
			}

			score = -e.search(b, depth-1-r, ply+1, -alpha-1, -alpha, move, false, true)
			if r > 0 && score > alpha {
				e.stats.PVSResearches++
				score = -e.search(b, depth-1, ply+1, -alpha-1, -alpha, move, false, true)
			}
			if pv && score > alpha && score < beta {
				e.stats.PVSResearches++
				score = -e.search(b, depth-1, ply+1, -beta, -alpha, move, true, true)
			}
		}
		b.UndoMove(move)

		if e.aborted {
			return DrawScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			if root {
				e.rootBestMove = move
			}
		}

		if alpha >= beta {
			e.stats.BetaCutoffs++
			if legalMoves == 1 {
				e.stats.PerfectCutoffs++
			}
			if move.IsQuiet() {
				e.killers.Add(ply, move)
				e.counters.Add(color, previous, move)
				e.history.Add(move.From(), move.To(), int(depth))
				for _, q := range quiets[:quietsCount] {
					e.history.Punish(q.From(), q.To(), int(depth))
				}
			}
			break
		}
		if move.IsQuiet() {
			quiets[quietsCount] = move
			quietsCount++
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -CheckmateScore + int16(ply)
		}
		return DrawScore
	}
	if root && e.rootBestMove == board.NoMove {
		e.rootBestMove = bestMove
	}

	score := Min(alpha, beta)
	e.storeEntry(b.Hash(), score, originalAlpha, beta, bestMove, depth, ply)
	return score
}
