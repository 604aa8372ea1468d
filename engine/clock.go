package engine

import (
	"time"

	"github.com/Tearth/Inanis-sub001/board"
)

// Limits bounds a search. Zero fields are unlimited; with no limit at all the search
// stops at MaxDepth or when its context is cancelled.
type Limits struct {
	Depth     int
	Nodes     uint64
	MoveTime  time.Duration
	TimeLeft  time.Duration
	Increment time.Duration
}

// Engine-side safety knobs
const (
	moveOverhead = 30 * time.Millisecond
	minMoveTime  = 5 * time.Millisecond
	maxTimeShare = 0.7
	panicTime    = time.Second
)

// allocateTime turns the clock state into a time budget for the current move.
// It returns zero when the search is not time limited.
func allocateTime(b *board.Board, l Limits) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if l.TimeLeft <= 0 {
		return 0
	}

	rem := l.TimeLeft
	movesLeft := time.Duration(estimateMovesRemaining(b.GamePhase()))

	var moveTime time.Duration
	if l.Increment > 0 && rem < panicTime {
		// Panic: live off the increment
		moveTime = l.Increment * 9 / 10
	} else {
		moveTime = rem/movesLeft + l.Increment
	}

	ceiling := Min(time.Duration(float64(rem)*maxTimeShare), rem-moveOverhead)
	return Clamp(moveTime, minMoveTime, Max(ceiling, minMoveTime))
}

// estimateMovesRemaining interpolates between 20 (endgame) and 45 (opening) moves.
func estimateMovesRemaining(phase int) int {
	return (phase*25)/board.MaxGamePhase + 20
}
