package bench

import (
	"context"
	"io"
	"testing"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/engine"
	"github.com/Tearth/Inanis-sub001/perft"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos := parse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perft.Run(pos, depth, perft.DefaultConfig())
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartPosFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func BenchmarkPerftFast_Kiwipete_D4(b *testing.B) {
	pos := parse(b, kiwipete)
	cfg := perft.Config{HashSizeMB: 16, Threads: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := perft.RunFast(context.Background(), pos, 4, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func benchSearch(b *testing.B, fen string, depth int) {
	pos := parse(b, fen)
	e := engine.NewEngine(16)
	e.SetOutput(io.Discard)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Clear()
		e.Search(context.Background(), pos, engine.Limits{Depth: depth})
	}
}

func BenchmarkSearch_Initial_D6(b *testing.B) {
	benchSearch(b, board.StartPosFEN, 6)
}

func BenchmarkSearch_Kiwipete_D5(b *testing.B) {
	benchSearch(b, kiwipete, 5)
}
