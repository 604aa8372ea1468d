// Package engine implements position evaluation, static exchange evaluation and the
// alpha-beta search with its move ordering and pruning heuristics.
package engine

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/cache"
)

// Engine owns the hash tables and heuristic tables used across searches. It is not
// safe for concurrent use; one search runs at a time.
type Engine struct {
	params SearchParams
	see    *SEE

	tt       *cache.TranspositionTable
	pawns    *cache.PawnTable
	history  *cache.HistoryTable
	killers  cache.KillersTable
	counters cache.CounterMovesTable

	info io.Writer

	// Per search state
	ctx          context.Context
	stats        Statistics
	deadline     time.Time
	nodeLimit    uint64
	aborted      bool
	rootBestMove board.Move
}

// NewEngine creates an engine whose hash tables share hashMB megabytes.
func NewEngine(hashMB int) *Engine {
	e := &Engine{
		params:  DefaultSearchParams(),
		see:     NewSEE(),
		history: cache.NewHistoryTable(),
		info:    os.Stdout,
	}
	e.Resize(hashMB)
	return e
}

// Resize reallocates the transposition and pawn tables, dropping their content.
func (e *Engine) Resize(hashMB int) {
	alloc := cache.Allocate(hashMB)
	e.tt = cache.NewTranspositionTable(cache.MB(alloc.TranspositionTableMB))
	e.pawns = cache.NewPawnTable(cache.MB(alloc.PawnTableMB))
}

// Clear forgets everything learned in previous searches, as for a new game.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.pawns.Clear()
	e.history = cache.NewHistoryTable()
	e.killers.Clear()
	e.counters.Clear()
}

// Params exposes the tunable search parameters.
func (e *Engine) Params() *SearchParams { return &e.params }

// SetOutput redirects the "info" protocol lines; nil silences them.
func (e *Engine) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	e.info = w
}

func (e *Engine) TranspositionTable() *cache.TranspositionTable { return e.tt }

func (e *Engine) PawnTable() *cache.PawnTable { return e.pawns }

// shouldStop reports whether the context, the deadline or the node budget ran out.
func (e *Engine) shouldStop() bool {
	if e.ctx.Err() != nil {
		return true
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		return true
	}
	return e.nodeLimit > 0 && e.stats.TotalNodes() >= e.nodeLimit
}

// countNode updates node statistics and polls the stop conditions every few thousand nodes.
func (e *Engine) countNode(quiescence bool, ply int) {
	if quiescence {
		e.stats.QNodes++
	} else {
		e.stats.Nodes++
	}
	if ply > e.stats.MaxPly {
		e.stats.MaxPly = ply
	}
	if e.stats.TotalNodes()%stopCheckInterval == 0 && e.shouldStop() {
		e.aborted = true
	}
}
