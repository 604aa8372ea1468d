package engine

import (
	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/cache"
)

// Mate scores are stored relative to the node that produced them, so that a mate
// found through a transposition at another ply still reports the right distance.
func scoreToTT(score int16, ply int) int16 {
	if IsScoreNearCheckmate(score) {
		if score > 0 {
			return score + int16(ply)
		}
		return score - int16(ply)
	}
	return score
}

func scoreFromTT(score int16, ply int) int16 {
	if IsScoreNearCheckmate(score) {
		if score > 0 {
			return score - int16(ply)
		}
		return score + int16(ply)
	}
	return score
}

// storeEntry records a search result, mapping the final alpha against the window it
// was searched with to a bound type.
func (e *Engine) storeEntry(hash uint64, score, originalAlpha, beta int16, bestMove board.Move, depth int8, ply int) {
	scoreType := cache.ExactScore
	switch {
	case score <= originalAlpha:
		scoreType = cache.AlphaScore
	case score >= beta:
		scoreType = cache.BetaScore
	}
	e.tt.Add(hash, scoreToTT(score, ply), bestMove, depth, scoreType)
	e.stats.TTAdded++
}
