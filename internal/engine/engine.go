package engine

import (
	"log"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// DefaultDepth is the ply depth NewEngine searches to when no override is
// given, matching original_source/Constants.h's SEARCH_DEPTH.
const DefaultDepth = board.SearchDepth

// Engine plays the engine's side of a game: a fixed-depth alpha-beta
// searcher with no transposition table, iterative deepening, or time
// management. Grounded on original_source/Search.cpp's Search class, which
// the teacher's iterative-deepening Engine (TT, difficulty levels, time
// limits, OnInfo callbacks) does not otherwise resemble.
type Engine struct {
	depth int
}

// NewEngine returns a ready-to-use Engine searching to DefaultDepth.
func NewEngine() *Engine {
	return &Engine{depth: DefaultDepth}
}

// NewEngineWithDepth returns an Engine searching to the given ply depth,
// for callers (e.g. cmd/chesscore-bench's -depth flag) that want to
// override DefaultDepth.
func NewEngineWithDepth(depth int) *Engine {
	return &Engine{depth: depth}
}

// BestMove searches every legal move available to the engine at pos and
// returns the highest-scoring one, along with its score. Grounded on
// original_source/Search.cpp's Search::getBestMove: play each root move,
// score it with Minimize, and print the move's notation and score as we go.
func (e *Engine) BestMove(pos *board.Position) (board.Move, int) {
	start := time.Now()

	var best board.Move
	bestScore := board.MinEval

	moves := board.GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		child := *pos
		child.Apply(m)

		score := Minimize(&child, 1, board.MinEval, board.MaxEval, e.depth)
		log.Printf("%s: %d", m.Notation(), score)

		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	log.Printf("%s elapsed", time.Since(start))
	return best, bestScore
}

// Evaluate returns the static evaluation of pos from the engine's side.
func (e *Engine) Evaluate(pos *board.Position) int {
	return board.Evaluate(pos)
}

// Depth returns the ply depth this Engine searches to.
func (e *Engine) Depth() int {
	return e.depth
}

// Perft counts leaf nodes of the legal move tree rooted at pos, depth
// plies deep. Kept as an Engine method, matching the teacher's own
// Engine.Perft, though the counting itself lives in board.Perft.
func (e *Engine) Perft(pos *board.Position, depth int) uint64 {
	return board.Perft(pos, depth)
}
