package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/engine"
)

func main() {
	depthFlag := flag.Int("depth", 8, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", board.StartPosFEN, "FEN to search")
	hashFlag := flag.Int("hash", 64, "hash size in MB")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	statsFlag := flag.Bool("stats", false, "print search statistics after every run")
	infoFlag := flag.Bool("info", false, "print protocol info lines")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	tables := board.NewDefaultTables()
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", *fenFlag, *depthFlag, *repeatFlag)

	startAll := time.Now()
	var nodes uint64
	for i := 0; i < *repeatFlag; i++ {
		b, err := board.ParseFEN(tables, *fenFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid FEN")
		}

		// Fresh engine for each run so that runs are comparable
		e := engine.NewEngine(*hashFlag)
		e.SetOutput(io.Discard)
		if *infoFlag {
			e.SetOutput(os.Stdout)
		}

		r := e.Search(context.Background(), b, engine.Limits{Depth: *depthFlag})
		nodes += r.Statistics.TotalNodes()

		fmt.Printf("iteration %d: bestmove %v  nodes=%d  time=%v\n", i+1, r.BestMove, r.Statistics.TotalNodes(), r.Time)
		if *statsFlag {
			r.Statistics.Dump(os.Stdout)
		}
	}

	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nps: %.0f\n", totalElapsed, float64(nodes)/totalElapsed.Seconds())
}
