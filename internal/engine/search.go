package engine

import "github.com/hailam/chesscore/internal/board"

// Maximize plays every legal engine move at the current ply and returns the
// highest score found by recursing into Minimize. Grounded line by line on
// original_source/Search.cpp's Search::maximize, including its checkmate/
// stalemate leaf handling and its ply-adjusted mate score (a shorter mating
// line scores higher than a longer one). maxDepth is the last ply that
// generates moves; a call at any deeper ply returns a static Evaluate.
func Maximize(pos *board.Position, ply, alpha, beta, maxDepth int) int {
	if ply > maxDepth {
		return board.Evaluate(pos)
	}

	bestScore := board.MinEval

	moves := board.GenerateLegalMoves(pos)
	if moves.Len() == 0 {
		if board.InCheck(pos, board.Engine) {
			return board.MinEval + ply
		}
		return 0
	}

	for _, m := range moves.Slice() {
		child := *pos
		child.Apply(m)

		score := Minimize(&child, ply+1, alpha, beta, maxDepth)
		if score > bestScore {
			bestScore = score
		}

		if bestScore > alpha {
			alpha = bestScore
		}
		if beta <= alpha {
			break
		}
	}

	return bestScore
}

// Minimize plays every legal player move at the current ply and returns the
// lowest score found by recursing into Maximize. Grounded on
// original_source/Search.cpp's Search::minimize.
func Minimize(pos *board.Position, ply, alpha, beta, maxDepth int) int {
	if ply > maxDepth {
		return board.Evaluate(pos)
	}

	bestScore := board.MaxEval

	moves := board.GenerateLegalMoves(pos)
	if moves.Len() == 0 {
		if board.InCheck(pos, board.Player) {
			return board.MaxEval - ply
		}
		return 0
	}

	for _, m := range moves.Slice() {
		child := *pos
		child.Apply(m)

		score := Maximize(&child, ply+1, alpha, beta, maxDepth)
		if score < bestScore {
			bestScore = score
		}

		if bestScore < beta {
			beta = bestScore
		}
		if beta <= alpha {
			break
		}
	}

	return bestScore
}
