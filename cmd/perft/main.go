package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"koth-engine/internal/crosscheck"
	"koth-engine/internal/render"
	"koth-engine/kothmg"
)

func main() {
	fen := flag.String("fen", kothmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", runtime.NumCPU(), "Goroutines used to split the root moves")
	verify := flag.Bool("verify", false, "Compare node count against dragontoothmg and goosemg")
	svgPath := flag.String("svg", "", "Write an SVG diagram of the position to this file")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	state, err := kothmg.ParseState(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseState error: %v\n", err)
		os.Exit(2)
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg: %v\n", err)
			os.Exit(2)
		}
		werr := render.SVG(f, state.Board(), render.Options{})
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			fmt.Fprintf(os.Stderr, "writing svg: %v\n", werr)
			os.Exit(2)
		}
	}

	if *divide {
		div, err := kothmg.PerftDivide(state, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(2)
		}
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// os.Exit skips deferred calls, so the profile is stopped explicitly
	stopProfile := func() error { return nil }
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		stopProfile = func() error {
			pprof.StopCPUProfile()
			return f.Close()
		}
	}

	start := time.Now()
	nodes, err := kothmg.PerftParallel(state, *depth, *workers)
	if perr := stopProfile(); perr != nil {
		fmt.Fprintf(os.Stderr, "closing cpuprofile: %v\n", perr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	// Depth Nodes Time NPS
	fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", *depth, nodes, elapsed, nps)

	if *verify {
		if err := crosscheck.Compare(state, *depth); err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("verify: dragontoothmg and goosemg agree")
	}
}
