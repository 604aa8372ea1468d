package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/perft"
)

func main() {
	fen := flag.String("fen", board.StartPosFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	fast := flag.Bool("fast", false, "Use the parallel hashed perft")
	threads := flag.Int("threads", 1, "Worker count for -fast")
	hash := flag.Int("hash", 64, "Perft hash table size in MB for -fast")
	integrity := flag.Bool("integrity", false, "Verify hashes and material at every node")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.Bool("cpuprofile", false, "Write a CPU profile to the working directory")
	memProf := flag.Bool("memprofile", false, "Write a heap profile to the working directory")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(board.NewDefaultTables(), *fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *cpuProf:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case *memProf:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	cfg := perft.Config{CheckIntegrity: *integrity, HashSizeMB: *hash, Threads: *threads}
	start := time.Now()

	switch {
	case *divide:
		branches := perft.RunDivided(b, *depth)
		for _, br := range branches {
			fmt.Printf("%s: %d\n", br.Move, br.Leafs)
		}
		fmt.Printf("Total: %d\n", perft.Total(branches))

	case *fast:
		result, err := perft.RunFast(context.Background(), b, *depth, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("fast perft failed")
		}
		report(*label, *depth, result.Leafs, time.Since(start))
		fmt.Printf("hash usage: %.2f%%\n", result.HashUsage)

	default:
		result := perft.Run(b, *depth, cfg)
		report(*label, *depth, result.Leafs, time.Since(start))
		fmt.Printf("captures %d, en passants %d, castles %d, promotions %d, checks %d\n",
			result.Captures, result.EnPassants, result.Castles, result.Promotions, result.Checks)
	}
}

// report prints the single line: Depth Nodes Time NPS
func report(label string, depth int, leafs uint64, elapsed time.Duration) {
	nps := float64(leafs) / elapsed.Seconds()
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", label, depth, leafs, elapsed, nps)
}
