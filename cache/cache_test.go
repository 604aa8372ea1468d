package cache

import (
	"sync"
	"testing"

	"github.com/Tearth/Inanis-sub001/board"
)

func TestTranspositionTable(t *testing.T) {
	tt := NewTranspositionTable(MB(1))
	if tt.Len() < 2 {
		t.Fatalf("table too small: %d slots", tt.Len())
	}
	hash := uint64(0xDEADBEEF12345678)
	move := board.NewMove(12, 28, board.DoublePush)

	if _, ok := tt.Get(hash); ok {
		t.Fatalf("empty table reported a hit")
	}
	tt.Add(hash, 42, move, 5, ExactScore)
	e, ok := tt.Get(hash)
	if !ok || e.Score != 42 || e.BestMove != move || e.Depth != 5 || e.Type != ExactScore {
		t.Fatalf("Get after Add: got %+v, %v", e, ok)
	}
	if got := tt.GetBestMove(hash); got != move {
		t.Fatalf("GetBestMove: got %s want %s", got, move)
	}

	// Same slot, different verification key.
	alias := hash ^ 0xFFFF000000000000
	if _, ok := tt.Get(alias); ok {
		t.Fatalf("aliased hash reported a hit")
	}
	tt.Add(alias, -7, board.NoMove, 1, AlphaScore)
	if _, ok := tt.Get(hash); ok {
		t.Fatalf("overwritten entry still reported a hit")
	}
	tt.Clear()
	if _, ok := tt.Get(alias); ok {
		t.Fatalf("cleared table reported a hit")
	}
}

func TestMinimumCapacity(t *testing.T) {
	tt := NewTranspositionTable(0)
	if tt.Len() != 1 {
		t.Fatalf("zero budget: got %d slots want 1", tt.Len())
	}
	tt.Add(1, 1, board.NoMove, 1, ExactScore)
	tt.Add(2|1<<63, 2, board.NoMove, 1, ExactScore)
	if _, ok := tt.Get(1); ok {
		t.Fatalf("single slot kept two entries")
	}
	tt.Add(2, 3, board.NoMove, 1, ExactScore)
	if e, ok := tt.Get(1); !ok || e.Score != 3 {
		t.Fatalf("same key fragment: got %+v, %v want score 3", e, ok)
	}
	if NewPerftTable(0).Len() != 1 || NewPawnTable(0).Len() != 1 {
		t.Fatalf("perft/pawn tables below one slot")
	}
}

func TestPerftTableDepth(t *testing.T) {
	pt := NewPerftTable(MB(1))
	hash := uint64(0x0123456789ABCDE0)
	pt.Add(hash, 4, 197281)
	if got, ok := pt.Get(hash, 4); !ok || got != 197281 {
		t.Fatalf("Get depth 4: got %d, %v", got, ok)
	}
	if _, ok := pt.Get(hash, 5); ok {
		t.Fatalf("count for depth 4 returned for depth 5")
	}
	if _, ok := pt.Get(hash^1<<63, 4); ok {
		t.Fatalf("different hash reported a hit")
	}
}

func TestPerftTableConcurrent(t *testing.T) {
	pt := NewPerftTable(4096)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20000; i++ {
				hash := uint64(i) * 0x9E3779B97F4A7C15
				depth := 1 + i%6
				leafs := hash>>20 + uint64(depth)
				pt.Add(hash, depth, leafs)
				if got, ok := pt.Get(hash, depth); ok && got != leafs {
					t.Errorf("worker %d: hash %#x: got %d want %d", w, hash, got, leafs)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	if u := pt.Usage(); u <= 0 || u > 100 {
		t.Fatalf("usage out of range: %f", u)
	}
}

func TestPawnTable(t *testing.T) {
	pt := NewPawnTable(MB(1))
	pt.Add(99, -35)
	if got, ok := pt.Get(99); !ok || got != -35 {
		t.Fatalf("Get: got %d, %v", got, ok)
	}
	if _, ok := pt.Get(99 ^ 1<<60); ok {
		t.Fatalf("aliased hash reported a hit")
	}
	if pt.Usage() == 0 {
		t.Fatalf("usage is zero after Add")
	}
	pt.Clear()
	if pt.Usage() != 0 {
		t.Fatalf("usage after Clear: %f", pt.Usage())
	}
}

func TestHistoryTable(t *testing.T) {
	h := NewHistoryTable()
	h.Add(12, 28, 4) // 16
	h.Add(6, 21, 2)  // 4
	if got := h.Get(12, 28, 100); got != 100 {
		t.Fatalf("top move: got %d want 100", got)
	}
	if got := h.Get(6, 21, 100); got != 25 {
		t.Fatalf("second move: got %d want 25", got)
	}
	if got := h.Get(0, 1, 100); got != 0 {
		t.Fatalf("unknown move: got %d want 0", got)
	}

	h.Punish(6, 21, 3)
	h.Punish(6, 21, 3)
	if got := h.Get(6, 21, 100); got != 0 {
		t.Fatalf("punished below zero: got %d want 0", got)
	}

	h.AgeValues()
	if got := h.Get(12, 28, 100); got != 100 {
		t.Fatalf("after aging: got %d want 100", got)
	}
}

func TestHistoryTableConcurrentAdd(t *testing.T) {
	h := NewHistoryTable()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				h.Add(i%64, (i*7)%64, 3)
			}
		}()
	}
	wg.Wait()
	if got := h.Get(0, 0, 255); got == 0 || got > 255 {
		t.Fatalf("Get after concurrent adds: %d", got)
	}
}

func TestKillers(t *testing.T) {
	var k KillersTable
	a, b, c := board.NewMove(1, 2, board.Quiet), board.NewMove(3, 4, board.Quiet), board.NewMove(5, 6, board.Quiet)
	k.Add(3, a)
	k.Add(3, a)
	k.Add(3, b)
	if got := k.Get(3); got[0] != b || got[1] != a {
		t.Fatalf("killers: got %v want [%s %s]", got, b, a)
	}
	k.Add(3, c)
	if got := k.Get(3); got[0] != c || got[1] != b {
		t.Fatalf("killers after third insert: got %v want [%s %s]", got, c, b)
	}
	if got := k.Get(4); got[0] != board.NoMove {
		t.Fatalf("killers leaked to another ply: %v", got)
	}
	k.Add(MaxPly+1, a)
	k.Clear()
	if got := k.Get(3); got[0] != board.NoMove || got[1] != board.NoMove {
		t.Fatalf("Clear kept killers: %v", got)
	}
}

func TestCounterMoves(t *testing.T) {
	var cm CounterMovesTable
	previous := board.NewMove(52, 36, board.DoublePush)
	reply := board.NewMove(6, 21, board.Quiet)

	if got := cm.Get(board.White, previous); got != board.NoMove {
		t.Fatalf("empty table: got %s", got)
	}
	cm.Add(board.White, previous, reply)
	if got := cm.Get(board.White, previous); got != reply {
		t.Fatalf("Get after Add: got %s want %s", got, reply)
	}
	if got := cm.Get(board.Black, previous); got != board.NoMove {
		t.Fatalf("reply leaked to the other side: %s", got)
	}
	if got := cm.Get(board.White, board.NewMove(52, 44, board.Quiet)); got != board.NoMove {
		t.Fatalf("reply leaked to another previous move: %s", got)
	}

	cm.Add(board.White, board.NoMove, board.NewMove(1, 18, board.Quiet))
	if got := cm.Get(board.White, board.NoMove); got != board.NoMove {
		t.Fatalf("null previous move stored a reply: %s", got)
	}

	cm.Clear()
	if got := cm.Get(board.White, previous); got != board.NoMove {
		t.Fatalf("Clear kept %s", got)
	}
}

func TestAllocate(t *testing.T) {
	cases := []struct {
		total, tt, pawns int
	}{
		{1, 1, 1},
		{16, 15, 1},
		{128, 127, 1},
		{1024, 1016, 8},
	}
	for _, c := range cases {
		got := Allocate(c.total)
		if got.TranspositionTableMB != c.tt || got.PawnTableMB != c.pawns {
			t.Fatalf("Allocate(%d): got %+v want tt %d pawns %d", c.total, got, c.tt, c.pawns)
		}
	}
}
