// Command chesscore-bench runs headless perft counts and search timing
// against the starting position, without a GUI.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/store"
)

var (
	perftDepth  = flag.Int("perft", 0, "run perft to this depth and exit (0 disables)")
	searchFlag  = flag.Bool("search", false, "run one fixed-depth search from the starting position")
	searchDepth = flag.Int("depth", engine.DefaultDepth, "override engine.DefaultDepth for -search")
	storeDir    = flag.String("store", "", "diagnostics database directory (defaults to the platform data dir)")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	pos := board.NewPosition()
	eng := engine.NewEngineWithDepth(*searchDepth)

	if *perftDepth > 0 {
		start := time.Now()
		nodes := eng.Perft(pos, *perftDepth)
		elapsed := time.Since(start)
		log.Printf("perft(%d) = %d nodes in %s", *perftDepth, nodes, elapsed)
	}

	if *searchFlag {
		dbDir := *storeDir
		if dbDir == "" {
			dir, err := store.DefaultDir()
			if err != nil {
				log.Fatal("could not resolve data directory: ", err)
			}
			dbDir = dir
		}

		st, err := store.Open(dbDir)
		if err != nil {
			log.Fatal("could not open diagnostics store: ", err)
		}
		defer st.Close()

		start := time.Now()
		move, score := eng.BestMove(pos)
		elapsed := time.Since(start)

		log.Printf("best move: %s (score %d) in %s", move.Notation(), score, elapsed)

		if err := st.RecordSearch(store.SearchRecord{
			Notation: move.Notation(),
			Score:    score,
			Depth:    *searchDepth,
			Duration: elapsed,
		}); err != nil {
			log.Printf("failed to record search diagnostics: %v", err)
		}
	}

	if *perftDepth == 0 && !*searchFlag {
		log.Fatal("nothing to do: pass -perft N or -search")
	}
}
