package board_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/Tearth/Inanis-sub001/board"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.StartPosFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		kiwipete,
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/4k3/8/2p5/8/B2P2K1/8 w - - 14 58",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"4k3/8/8/8/8/8/8/4K2R b K - 99 120",
	}
	for _, fen := range fens {
		if got := mustParse(t, fen).ToFEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestFENShortForm(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if got := b.ToFEN(); got != board.StartPosFEN {
		t.Fatalf("short FEN: got %q want %q", got, board.StartPosFEN)
	}
	if b.Hash() != board.NewStartPos(tables).Hash() {
		t.Fatalf("short FEN hash differs from the start position")
	}
}

func TestFENEnPassantKeepsIntegrity(t *testing.T) {
	for _, fen := range []string{
		"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
	} {
		b := mustParse(t, fen)
		if err := b.Validate(); err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		for _, m := range b.GetLegalMoves() {
			b.MakeMove(m)
			if err := b.Validate(); err != nil {
				t.Fatalf("%s after %s: %v", fen, m, err)
			}
			b.UndoMove(m)
		}
		if got := b.ToFEN(); got != fen {
			t.Fatalf("undo all moves: got %q want %q", got, fen)
		}
	}
}

func TestFENMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/8/3P4/8/8/4K3 w - e3 0 1",
		"4k3/8/8/8/4P3/8/8/4K3 w - e3 0 1",
		"4k3/8/8/8/4P3/8/8/4K3 b - e6 0 1",
		"4k3/8/4n3/3Pp3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/3PP3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/3P4/4p3/8/8/4K3 b - e3 0 1",
	}
	for _, fen := range bad {
		b, err := board.ParseFEN(tables, fen)
		if err == nil {
			t.Fatalf("ParseFEN(%q): expected error, got board %s", fen, b.ToFEN())
		}
		if !errors.Is(err, board.ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): error %v does not wrap ErrInvalidFEN", fen, err)
		}
	}
}
