package perft

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/cache"
)

// FastResult is the outcome of RunFast.
type FastResult struct {
	Leafs uint64
	// HashUsage is the perft table fill percentage averaged over the workers.
	HashUsage float64
}

// workQueue hands out positions one per lock acquisition.
type workQueue struct {
	mu     sync.Mutex
	boards []*board.Board
}

func (q *workQueue) pop() *board.Board {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.boards) == 0 {
		return nil
	}
	b := q.boards[len(q.boards)-1]
	q.boards = q.boards[:len(q.boards)-1]
	return b
}

// RunFast expands the root moves into independent boards and lets cfg.Threads workers
// count them, sharing one perft table. Only a cancelled ctx produces an error.
func RunFast(ctx context.Context, b *board.Board, depth int, cfg Config) (FastResult, error) {
	if depth <= 1 {
		return FastResult{Leafs: countLeafs(b, max(depth, 0))}, nil
	}

	queue := &workQueue{}
	for _, m := range b.GetLegalMoves() {
		child := b.Clone()
		child.MakeMove(m)
		queue.boards = append(queue.boards, child)
	}

	threads := max(cfg.Threads, 1)
	table := cache.NewPerftTable(cache.MB(max(cfg.HashSizeMB, 1)))

	var leafs atomic.Uint64
	usage := make([]float64, threads)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		w := w
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				child := queue.pop()
				if child == nil {
					break
				}
				leafs.Add(countHashed(child, depth-1, table))
			}
			usage[w] = table.Usage()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FastResult{}, err
	}

	var total float64
	for _, u := range usage {
		total += u
	}
	result := FastResult{Leafs: leafs.Load(), HashUsage: total / float64(threads)}

	log.Debug().
		Int("depth", depth).
		Int("threads", threads).
		Uint64("leafs", result.Leafs).
		Float64("hash_usage", result.HashUsage).
		Msg("fast perft finished")

	return result, nil
}

// countHashed is countLeafs backed by the shared perft table.
func countHashed(b *board.Board, depth int, table *cache.PerftTable) uint64 {
	if depth == 0 {
		return 1
	}
	if leafs, ok := table.Get(b.Hash(), depth); ok {
		return leafs
	}

	var moves [board.MaxMovesCount]board.Move
	n := b.GetMoves(&moves)
	color := b.ActiveColor()

	var leafs uint64
	for _, m := range moves[:n] {
		b.MakeMove(m)
		if !b.IsKingChecked(color) {
			leafs += countHashed(b, depth-1, table)
		}
		b.UndoMove(m)
	}

	table.Add(b.Hash(), depth, leafs)
	return leafs
}
