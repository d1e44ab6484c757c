// Command cdcl runs the solver core against a DIMACS CNF or incremental
// ICNF instance file. Flag handling stays deliberately minimal — a thin
// stdlib flag wrapper, kept in the teacher's own style — since CLI
// ergonomics are outside this core's scope (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/solvekit/cdcl/internal/dimacs"
	"github.com/solvekit/cdcl/internal/solver"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagVerbose = flag.Bool(
	"v",
	false,
	"attach an info-level stderr logger to the solver (the solver core emits no log events)",
)

var flagTimeout = flag.Duration(
	"timeout",
	0,
	"abort and report unknown after the given duration (0 disables)",
)

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	verbose      bool
	timeout      time.Duration
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		verbose:      *flagVerbose,
		timeout:      *flagTimeout,
	}, nil
}

func run(cfg *config) error {
	opts := solver.DefaultOptions
	if cfg.verbose {
		opts.Logger = hclog.New(&hclog.LoggerOptions{
			Name:  "cdcl",
			Level: hclog.Info,
		})
	}
	if cfg.timeout > 0 {
		opts.Timeout = cfg.timeout
	}

	s := solver.NewSolver(opts)

	stats, err := dimacs.Load(cfg.instanceFile, false, s)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:   %d\n", stats.Variables)
	fmt.Printf("c clauses:     %d\n", stats.Clauses)
	fmt.Printf("c assumptions: %d\n", stats.Assumptions)

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status)

	if status == solver.StatusSatisfiable {
		printModel(s, stats.Variables)
	}
	return nil
}

func printModel(s *solver.Solver, nVars int) {
	fmt.Print("v")
	for v := 1; v <= nVars; v++ {
		fmt.Printf(" %d", s.Val(v))
	}
	fmt.Println(" 0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
