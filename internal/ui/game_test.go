package ui

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(t.TempDir())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	// The engine plays White and moves first; hand the move to the player
	// so these tests exercise the player's side of the contract.
	g.position.EngineToMove = false
	g.legalMoves = board.GenerateLegalMoves(g.position)
	return g
}

func TestLegalMovesFromStartingPosition(t *testing.T) {
	g := newTestGame(t)

	dests := g.LegalMovesFrom(board.NewSquare(6, 4))
	if len(dests) != 2 {
		t.Fatalf("expected 2 pawn pushes from d7, got %d: %v", len(dests), dests)
	}
}

func TestApplyPlayerMoveRejectsIllegalMove(t *testing.T) {
	g := newTestGame(t)

	err := g.ApplyPlayerMove(board.NewSquare(6, 4), board.NewSquare(2, 4), board.Normal)
	if err != errIllegalMove {
		t.Fatalf("expected errIllegalMove, got %v", err)
	}
}

func TestApplyPlayerMoveAppliesLegalPush(t *testing.T) {
	g := newTestGame(t)

	from, to := board.NewSquare(6, 4), board.NewSquare(4, 4)
	if err := g.ApplyPlayerMove(from, to, board.Normal); err != nil {
		t.Fatalf("ApplyPlayerMove: %v", err)
	}
	if g.PieceAt(to) != board.PlayerPawn {
		t.Fatalf("expected player pawn on d5, got %v", g.PieceAt(to))
	}
	if g.PieceAt(from) != board.NoPiece {
		t.Fatalf("expected d7 to be empty after the push")
	}
	if g.position.SideToMove() != board.Engine {
		t.Fatalf("expected it to be the engine's turn after the player's move")
	}
}

func TestApplyPlayerMoveRejectsOutOfTurn(t *testing.T) {
	g := newTestGame(t)
	g.position.EngineToMove = true

	err := g.ApplyPlayerMove(board.NewSquare(1, 4), board.NewSquare(3, 4), board.Normal)
	if err != errNotPlayersTurn {
		t.Fatalf("expected errNotPlayersTurn, got %v", err)
	}
}
