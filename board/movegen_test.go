package board_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/internal/testutil"
)

var tables = board.NewDefaultTables()

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

var oraclePositions = []string{
	board.StartPosFEN,
	kiwipete,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	"4k3/8/8/8/8/8/8/R3K2R b KQ - 0 1",
}

func mustParse(t testing.TB, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(tables, fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

func lessString(a, b string) bool { return a < b }

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oraclePositions {
		b := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)

		var walk func(depth int)
		walk = func(depth int) {
			legal := b.GetLegalMoves()
			want := make([]string, 0, len(legal))
			for _, m := range oracle.GenerateLegalMoves() {
				want = append(want, m.String())
			}
			testutil.SameElements(t, "legal moves of "+b.ToFEN(), moveStrings(legal), want, lessString)
			if depth == 0 {
				return
			}
			for _, m := range legal {
				om := findDragontoothMove(t, &oracle, m.String())
				undo := oracle.Apply(om)
				b.MakeMove(m)
				walk(depth - 1)
				b.UndoMove(m)
				undo()
			}
		}
		walk(1)
	}
}

func findDragontoothMove(t *testing.T, b *dragontoothmg.Board, text string) dragontoothmg.Move {
	t.Helper()
	for _, m := range b.GenerateLegalMoves() {
		if m.String() == text {
			return m
		}
	}
	t.Fatalf("oracle has no move %s", text)
	return 0
}

func TestLegalMovesMatchNotnil(t *testing.T) {
	for _, fen := range oraclePositions {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN(%q): %v", fen, err)
		}
		game := chess.NewGame(opt)
		want := make([]string, 0, 64)
		for _, m := range game.ValidMoves() {
			want = append(want, m.String())
		}
		b := mustParse(t, fen)
		testutil.SameElements(t, "legal moves of "+fen, moveStrings(b.GetLegalMoves()), want, lessString)
	}
}

func perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves [board.MaxMovesCount]board.Move
	n := b.GetMoves(&moves)
	color := b.ActiveColor()
	var nodes uint64
	for _, m := range moves[:n] {
		b.MakeMove(m)
		if !b.IsKingChecked(color) {
			nodes += perft(b, depth-1)
		}
		b.UndoMove(m)
	}
	return nodes
}

func TestPerftShallow(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{board.StartPosFEN, 1, 20},
		{board.StartPosFEN, 3, 8902},
		{kiwipete, 1, 48},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 1, 5},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1, 11},
	}
	for _, c := range cases {
		if got := perft(mustParse(t, c.fen), c.depth); got != c.want {
			t.Fatalf("perft(%q, %d): got %d want %d", c.fen, c.depth, got, c.want)
		}
	}
}

func TestCapturesAreSubsetOfMoves(t *testing.T) {
	for _, fen := range oraclePositions {
		b := mustParse(t, fen)
		var all, captures [board.MaxMovesCount]board.Move
		n := b.GetMoves(&all)
		c := b.GetCaptures(&captures)

		want := make([]string, 0, n)
		for _, m := range all[:n] {
			if m.IsCapture() {
				want = append(want, m.String())
			}
		}
		got := make([]string, 0, c)
		for _, m := range captures[:c] {
			if !m.IsCapture() {
				t.Fatalf("%s: GetCaptures returned quiet move %s", fen, m)
			}
			got = append(got, m.String())
		}
		testutil.SameElements(t, "captures of "+fen, got, want, lessString)
	}
}

func TestAttackMasks(t *testing.T) {
	b := mustParse(t, board.StartPosFEN)
	if got, want := b.AttackMask(board.White), uint64(0x0000000000FFFF7E); got != want {
		t.Fatalf("white attacks: got %#016x want %#016x", got, want)
	}
	if got, want := b.AttackMask(board.Black), uint64(0x7EFFFF0000000000); got != want {
		t.Fatalf("black attacks: got %#016x want %#016x", got, want)
	}
}

func TestAttackSymmetry(t *testing.T) {
	for _, fen := range oraclePositions {
		b := mustParse(t, fen)
		for _, c := range []board.Color{board.White, board.Black} {
			var fromQueries uint64
			for sq := 0; sq < 64; sq++ {
				if b.IsFieldAttacked(c.Opponent(), sq) {
					fromQueries |= 1 << uint(sq)
				}
			}
			if mask := b.AttackMask(c); mask != fromQueries {
				t.Fatalf("%s color %s: attack mask %#016x, field queries %#016x", fen, c, mask, fromQueries)
			}
		}
	}
}

func TestIsKingChecked(t *testing.T) {
	cases := []struct {
		fen   string
		color board.Color
		want  bool
	}{
		{"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", board.Black, true},
		{"4k3/8/8/8/8/8/4P3/4R1K1 b - - 0 1", board.Black, false},
		{"4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", board.Black, false},
		{"4k3/8/8/1B6/8/8/8/6K1 b - - 0 1", board.Black, true},
		{"4k3/8/3N4/8/8/8/8/6K1 b - - 0 1", board.Black, true},
		{"8/8/8/8/8/8/3p4/4K2k w - - 0 1", board.White, true},
		{"8/8/8/8/8/8/4p3/4K2k w - - 0 1", board.White, false},
		{"8/8/8/8/8/8/8/7k w - - 0 1", board.White, false},
	}
	for _, c := range cases {
		if got := mustParse(t, c.fen).IsKingChecked(c.color); got != c.want {
			t.Fatalf("IsKingChecked(%q): got %v want %v", c.fen, got, c.want)
		}
	}
}

func TestGetAttackingPieces(t *testing.T) {
	cases := []struct {
		fen   string
		color board.Color
		sq    string
		want  uint8
	}{
		// Black pieces attacking e5 in the view of white: pawn d6 and knight f7.
		{"4k3/5n2/3p4/4P3/8/8/8/4K3 w - - 0 1", board.White, "e5", 1 | 1<<1},
		// Doubled rooks on the e-file count as two.
		{"4r1k1/4r3/8/4P3/8/8/8/K7 w - - 0 1", board.White, "e5", 3 << 4},
		// A bishop behind a queen is still seen, knights add up.
		{"6k1/b7/1q6/8/3P4/1n3n2/8/K7 w - - 0 1", board.White, "d4", 7<<1 | 1<<6},
		// White king and pawn attacking d5 in the view of black.
		{"4k3/8/8/3p4/2PK4/8/8/8 b - - 0 1", board.Black, "d5", 1 | 1<<7},
		{board.StartPosFEN, board.White, "e4", 0},
	}
	for _, c := range cases {
		if got := mustParse(t, c.fen).GetAttackingPieces(c.color, board.ParseSquare(c.sq)); got != c.want {
			t.Fatalf("GetAttackingPieces(%q, %s): got %08b want %08b", c.fen, c.sq, got, c.want)
		}
	}
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	// The f1 square is covered by the rook on f8, so only the long castle is legal.
	b := mustParse(t, "5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var short, long bool
	for _, m := range b.GetLegalMoves() {
		short = short || m.Flags() == board.ShortCastling
		long = long || m.Flags() == board.LongCastling
	}
	if short || !long {
		t.Fatalf("castling: got short=%v long=%v want short=false long=true", short, long)
	}
}
