package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

type step struct {
	args     []string
	required bool
}

// run executes go with args and prints everything it wrote. Returns the exit code.
func run(args ...string) int {
	out, err := exec.Command("go", args...).CombinedOutput()
	os.Stdout.Write(out)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "go %v: %v\n", args, err)
	return 1
}

func perftStep(label string, extra ...string) step {
	return step{args: append([]string{"run", "./cmd/perft", "-label", label}, extra...)}
}

func main() {
	// Usage: go run ./cmd/benchrun
	sections := []struct {
		title string
		steps []step
	}{
		{"Columns: BENCHMARK  N  ns/op  B/op  allocs/op", []step{
			{args: []string{"test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"}, required: true},
		}},
		{"\nPerft:\nTEST \t\tDepth \t\tNodes \t\tTime \tNPS", []step{
			perftStep("Initial", "-depth", "3"),
			perftStep("Initial", "-depth", "4"),
			perftStep("Initial", "-depth", "5"),
			perftStep("Initial", "-depth", "6"),
			perftStep("InitialFast", "-depth", "6", "-fast", "-threads", "4"),
			perftStep("Kiwipete", "-fen", kiwipete, "-depth", "4"),
		}},
		{"\nSearch:", []step{
			{args: []string{"run", "./cmd/searchbench", "-depth", "8"}},
		}},
	}

	for _, section := range sections {
		fmt.Println(section.title)
		for _, s := range section.steps {
			if code := run(s.args...); code != 0 && s.required {
				os.Exit(code)
			}
		}
	}
}
