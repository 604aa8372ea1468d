package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tearth/Inanis-sub001/board"
	"github.com/Tearth/Inanis-sub001/engine"
	"github.com/Tearth/Inanis-sub001/perft"
)

const (
	defaultHashMB = 16
	maxHashMB     = 4096
	maxThreads    = 64
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	newUCI(os.Stdout).loop(os.Stdin)
}

// syncWriter serializes writes from the protocol loop and the search goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type uci struct {
	out    *syncWriter
	tables *board.Tables
	board  *board.Board
	engine *engine.Engine

	hashMB         int
	threads        int
	checkIntegrity bool

	cancel context.CancelFunc
	done   chan struct{}
}

func newUCI(out io.Writer) *uci {
	u := &uci{
		out:     &syncWriter{w: out},
		tables:  board.NewDefaultTables(),
		hashMB:  defaultHashMB,
		threads: 1,
	}
	u.board = board.NewStartPos(u.tables)
	u.engine = engine.NewEngine(u.hashMB)
	u.engine.SetOutput(u.out)
	return u
}

func (u *uci) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *uci) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}

		var err error
		switch strings.ToLower(tokens[0]) {
		case "uci":
			u.println("id name Inanis-sub001")
			u.println("id author Tearth")
			u.println(fmt.Sprintf("option name Hash type spin default %d min 1 max %d", defaultHashMB, maxHashMB))
			u.println(fmt.Sprintf("option name Threads type spin default 1 min 1 max %d", maxThreads))
			u.println("option name CheckIntegrity type check default false")
			u.println("uciok")
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.wait()
			u.board = board.NewStartPos(u.tables)
			u.engine.Clear()
		case "setoption":
			u.wait()
			err = u.setOption(tokens[1:])
		case "position":
			u.wait()
			err = u.position(tokens[1:])
		case "go":
			var limits engine.Limits
			if limits, err = parseGo(tokens[1:], u.board.ActiveColor()); err == nil {
				u.startSearch(limits)
			}
		case "perft":
			u.wait()
			err = u.perft(tokens[1:], false)
		case "divide":
			u.wait()
			err = u.perft(tokens[1:], true)
		case "d", "fen":
			u.println(u.board.ToFEN())
		case "stop":
			u.stop()
		case "quit":
			u.stop()
			return
		default:
			u.println("info string Unknown command:", scanner.Text())
		}

		if err != nil {
			log.Debug().Err(err).Str("command", scanner.Text()).Msg("command rejected")
			u.println("info string", err)
		}
	}
	u.wait()
}

// position handles "position startpos|fen <fen> [moves <m1> ...]".
func (u *uci) position(args []string) error {
	if len(args) == 0 {
		return errors.New("malformed position command")
	}

	fen := board.StartPosFEN
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if tok == "moves" {
				end = i
				break
			}
		}
		fen = strings.Join(rest[:end], " ")
		rest = rest[end:]
	default:
		return errors.Errorf("invalid position subcommand %q", args[0])
	}

	var moves []string
	if len(rest) > 0 && rest[0] == "moves" {
		moves = rest[1:]
	}

	b, err := board.NewFromMoves(u.tables, fen, moves)
	if err != nil {
		return errors.Wrap(err, "position")
	}
	u.board = b
	return nil
}

// setOption handles "setoption name <name> value <value>".
func (u *uci) setOption(args []string) error {
	if len(args) < 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		return errors.New("malformed setoption command")
	}
	name, value := strings.ToLower(args[1]), args[3]

	switch name {
	case "hash":
		mb, err := parseBounded(value, 1, maxHashMB)
		if err != nil {
			return errors.Wrap(err, "Hash")
		}
		u.hashMB = mb
		u.engine.Resize(mb)
	case "threads":
		n, err := parseBounded(value, 1, maxThreads)
		if err != nil {
			return errors.Wrap(err, "Threads")
		}
		u.threads = n
	case "checkintegrity":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "CheckIntegrity")
		}
		u.checkIntegrity = v
	default:
		return errors.Errorf("unknown option %q", args[1])
	}
	return nil
}

func parseBounded(value string, low, high int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", value)
	}
	if n < low || n > high {
		return 0, errors.Errorf("value %d out of range [%d, %d]", n, low, high)
	}
	return n, nil
}

// parseGo converts the "go" arguments into search limits for the side to move.
func parseGo(args []string, side board.Color) (engine.Limits, error) {
	var limits engine.Limits
	var times, increments [2]time.Duration

	for i := 0; i < len(args); i++ {
		key := strings.ToLower(args[i])
		if key == "infinite" {
			continue
		}
		if i+1 >= len(args) {
			return engine.Limits{}, errors.Errorf("missing value for %s", key)
		}
		value, err := strconv.Atoi(args[i+1])
		if err != nil || value < 0 {
			return engine.Limits{}, errors.Errorf("could not convert %s value %q", key, args[i+1])
		}
		i++

		ms := time.Duration(value) * time.Millisecond
		switch key {
		case "depth":
			limits.Depth = value
		case "nodes":
			limits.Nodes = uint64(value)
		case "movetime":
			limits.MoveTime = ms
		case "wtime":
			times[board.White] = ms
		case "btime":
			times[board.Black] = ms
		case "winc":
			increments[board.White] = ms
		case "binc":
			increments[board.Black] = ms
		case "movestogo":
		default:
			return engine.Limits{}, errors.Errorf("unknown go subcommand %s", key)
		}
	}

	limits.TimeLeft = times[side]
	limits.Increment = increments[side]
	return limits, nil
}

func (u *uci) startSearch(limits engine.Limits) {
	u.wait()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	u.cancel, u.done = cancel, done

	b := u.board.Clone()
	go func() {
		defer close(done)
		r := u.engine.Search(ctx, b, limits)

		move := "0000"
		if r.BestMove != board.NoMove {
			move = r.BestMove.String()
		}
		u.println("bestmove", move)
	}()
}

// wait blocks until the running search, if any, has printed its best move.
func (u *uci) wait() {
	if u.done != nil {
		<-u.done
		u.cancel()
		u.cancel, u.done = nil, nil
	}
}

func (u *uci) stop() {
	if u.cancel != nil {
		u.cancel()
	}
	u.wait()
}

func (u *uci) perft(args []string, divided bool) error {
	if len(args) != 1 {
		return errors.New("usage: perft <depth>")
	}
	depth, err := parseBounded(args[0], 1, 15)
	if err != nil {
		return errors.Wrap(err, "depth")
	}

	start := time.Now()
	if divided {
		branches := perft.RunDivided(u.board, depth)
		for _, br := range branches {
			u.println(fmt.Sprintf("%s: %d", br.Move, br.Leafs))
		}
		u.println(fmt.Sprintf("info string divide depth %d nodes %d", depth, perft.Total(branches)))
		return nil
	}

	cfg := perft.Config{CheckIntegrity: u.checkIntegrity, HashSizeMB: u.hashMB, Threads: u.threads}
	var leafs uint64
	if u.threads > 1 {
		result, err := perft.RunFast(context.Background(), u.board, depth, cfg)
		if err != nil {
			return err
		}
		leafs = result.Leafs
	} else {
		leafs = perft.Run(u.board, depth, cfg).Leafs
	}

	u.println(fmt.Sprintf("info string perft depth %d nodes %d time %d", depth, leafs, time.Since(start).Milliseconds()))
	return nil
}
