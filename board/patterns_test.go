package board

import (
	"encoding/binary"
	"math/bits"
	"testing"

	"lukechampine.com/frand"
)

var testTables = NewDefaultTables()

func TestJumpAndBoxPatterns(t *testing.T) {
	cases := []struct {
		sq          string
		knight, box int
	}{
		{"a1", 2, 3},
		{"h8", 2, 3},
		{"b1", 3, 5},
		{"d4", 8, 8},
		{"g7", 4, 8},
	}
	for _, c := range cases {
		sq := ParseSquare(c.sq)
		if got := bits.OnesCount64(testTables.KnightMoves(sq)); got != c.knight {
			t.Fatalf("knight moves from %s: got %d want %d", c.sq, got, c.knight)
		}
		if got := bits.OnesCount64(testTables.KingMoves(sq)); got != c.box {
			t.Fatalf("king moves from %s: got %d want %d", c.sq, got, c.box)
		}
	}
	if got, want := testTables.KnightMoves(ParseSquare("a1")), uint64(1)<<10|uint64(1)<<17; got != want {
		t.Fatalf("knight a1: got %#x want %#x", got, want)
	}
}

func TestPawnAttacks(t *testing.T) {
	e4 := ParseSquare("e4")
	if got, want := testTables.PawnAttacks(White, e4), uint64(1)<<uint(ParseSquare("d5"))|uint64(1)<<uint(ParseSquare("f5")); got != want {
		t.Fatalf("white pawn e4: got %#x want %#x", got, want)
	}
	if got, want := testTables.PawnAttacks(Black, e4), uint64(1)<<uint(ParseSquare("d3"))|uint64(1)<<uint(ParseSquare("f3")); got != want {
		t.Fatalf("black pawn e4: got %#x want %#x", got, want)
	}
	if got := testTables.PawnAttacks(White, ParseSquare("a8")); got != 0 {
		t.Fatalf("white pawn a8: got %#x want 0", got)
	}
	if got, want := testTables.PawnAttacks(Black, ParseSquare("h2")), uint64(1)<<uint(ParseSquare("g1")); got != want {
		t.Fatalf("black pawn h2: got %#x want %#x", got, want)
	}
}

func TestRelevantMaskSizes(t *testing.T) {
	p := testTables.patterns
	for sq, want := range map[string]int{"a1": 12, "d4": 10, "h8": 12, "e1": 11} {
		if got := bits.OnesCount64(rookMask(p, ParseSquare(sq))); got != want {
			t.Fatalf("rook mask %s: got %d bits want %d", sq, got, want)
		}
	}
	for sq, want := range map[string]int{"a1": 6, "d4": 9, "e4": 9, "b2": 5} {
		if got := bits.OnesCount64(bishopMask(p, ParseSquare(sq))); got != want {
			t.Fatalf("bishop mask %s: got %d bits want %d", sq, got, want)
		}
	}
}

func TestMagicLookupMatchesRayCasting(t *testing.T) {
	var key [32]byte
	rng := frand.NewCustom(key[:], 1024, 8)
	var buf [8]byte
	random := func() uint64 {
		rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	for i := 0; i < 2000; i++ {
		// Sparse and dense occupancies both matter.
		occupancy := random() & random()
		if i%2 == 1 {
			occupancy |= random()
		}
		for sq := 0; sq < 64; sq++ {
			if got, want := testTables.RookMoves(occupancy, sq), slide(sq, rookDirections[:], occupancy); got != want {
				t.Fatalf("rook %s occ %#x: got %#x want %#x", SquareName(sq), occupancy, got, want)
			}
			if got, want := testTables.BishopMoves(occupancy, sq), slide(sq, bishopDirs[:], occupancy); got != want {
				t.Fatalf("bishop %s occ %#x: got %#x want %#x", SquareName(sq), occupancy, got, want)
			}
		}
	}
}

func TestRookMovesEmptyBoard(t *testing.T) {
	// A rook sees its whole rank and file on an empty board.
	for sq := 0; sq < 64; sq++ {
		want := (FileA<<uint(sq%8) | Rank1<<uint(8*(sq/8))) &^ (1 << uint(sq))
		if got := testTables.RookMoves(0, sq); got != want {
			t.Fatalf("rook %s: got %#x want %#x", SquareName(sq), got, want)
		}
	}
}

func TestBadMagicPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a colliding magic")
		}
	}()
	p := testTables.patterns
	newMagicEntry(0, rookMask(p, 0), 1, rookDirections[:])
}

func TestZobristSeeds(t *testing.T) {
	a, b, c := newZobristKeys(1), newZobristKeys(1), newZobristKeys(2)
	if a != b {
		t.Fatalf("same seed produced different keys")
	}
	if a.side == c.side || a.pieces[0][0][0] == c.pieces[0][0][0] {
		t.Fatalf("different seeds produced equal keys")
	}
}

func BenchmarkRookMoves(b *testing.B) {
	occupancy := uint64(0x00FF00000000FF00)
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink ^= testTables.RookMoves(occupancy, i&63)
	}
	_ = sink
}
