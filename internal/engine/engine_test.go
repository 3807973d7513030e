package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestMaximizeFindsMateInOne(t *testing.T) {
	// Engine rook delivers back-rank mate: Ra8-a1 style confinement with
	// its own king cut off. Only the mating rook move should reach the
	// best possible score.
	pos := &board.Position{}
	pos.Pieces[board.EngineKing] = boardOf(board.NewSquare(5, 4))
	pos.Pieces[board.EngineRook] = boardOf(board.NewSquare(6, 0))
	pos.Pieces[board.PlayerKing] = boardOf(board.NewSquare(7, 7))
	pos.Pieces[board.PlayerPawn] = boardOf(board.NewSquare(6, 6)) | boardOf(board.NewSquare(6, 7))
	pos.EngineToMove = true
	pos.Update()

	move, score := NewEngine().BestMove(pos)
	if move.Moving != board.EngineRook {
		t.Fatalf("expected the mating rook move, got %v", move)
	}

	child := *pos
	child.Apply(move)
	if !board.IsCheckmate(&child) {
		t.Fatalf("expected the chosen move to deliver checkmate, got score %d", score)
	}
}

func TestMaximizePrefersMaterialGain(t *testing.T) {
	pos := &board.Position{}
	pos.Pieces[board.EngineKing] = boardOf(board.NewSquare(7, 4))
	pos.Pieces[board.EngineRook] = boardOf(board.NewSquare(4, 4))
	pos.Pieces[board.PlayerKing] = boardOf(board.NewSquare(0, 7))
	pos.Pieces[board.PlayerQueen] = boardOf(board.NewSquare(4, 0))
	pos.EngineToMove = true
	pos.Update()

	move, _ := NewEngine().BestMove(pos)
	if move.To != board.NewSquare(4, 0) || move.Captured != board.PlayerQueen {
		t.Fatalf("expected the rook to capture the undefended queen, got %v", move)
	}
}

func boardOf(sq board.Square) board.Bitboard {
	return board.Bitboard(1) << uint(sq)
}
