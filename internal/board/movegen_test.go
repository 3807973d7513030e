package board

import "testing"

func TestInitialPositionMoveCount(t *testing.T) {
	pos := NewPosition()
	moves := GenerateLegalMoves(pos)
	if moves.Len() != 20 {
		t.Fatalf("got %d legal moves from the initial position, want 20", moves.Len())
	}
}

func TestBackRankCheckmate(t *testing.T) {
	pos := &Position{}
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 4))
	pos.Pieces[EngineRook] = boardOf(NewSquare(7, 0))
	pos.Pieces[PlayerKing] = boardOf(NewSquare(7, 7))
	pos.Pieces[PlayerPawn] = boardOf(NewSquare(6, 6)) | boardOf(NewSquare(6, 7))
	pos.EngineToMove = false
	pos.Update()

	if !InCheck(pos, Player) {
		t.Fatal("expected the player king to be in check")
	}
	if !IsCheckmate(pos) {
		t.Fatal("expected checkmate")
	}
}

func TestNotCheckmateKingCapturesAttacker(t *testing.T) {
	pos := &Position{}
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 4))
	pos.Pieces[EngineRook] = boardOf(NewSquare(7, 6))
	pos.Pieces[PlayerKing] = boardOf(NewSquare(7, 7))
	pos.EngineToMove = false
	pos.Update()

	if IsCheckmate(pos) {
		t.Fatal("expected not checkmate: the king can capture the attacking rook")
	}
	var found bool
	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.To == NewSquare(7, 6) && m.Captured == EngineRook {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a legal move capturing the attacking rook")
	}
}

func TestStalemate(t *testing.T) {
	// Player king cornered with no check and no legal move: classic
	// king+queen-vs-king stalemate shape.
	pos := &Position{}
	pos.Pieces[PlayerKing] = boardOf(NewSquare(0, 0))
	pos.Pieces[EngineKing] = boardOf(NewSquare(1, 2))
	pos.Pieces[EngineQueen] = boardOf(NewSquare(2, 1))
	pos.EngineToMove = false
	pos.Update()

	if InCheck(pos, Player) {
		t.Fatal("expected no check in this stalemate position")
	}
	if !IsStalemate(pos) {
		moves := GenerateLegalMoves(pos)
		t.Fatalf("expected stalemate, legal moves: %v", moves.Slice())
	}
}

func TestPinnedRookCannotLeaveRay(t *testing.T) {
	// Engine rook pinned against its own king along a file by a player
	// rook: it may slide along the file but never step off it.
	pos := &Position{}
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 4))
	pos.Pieces[EngineRook] = boardOf(NewSquare(3, 4))
	pos.Pieces[PlayerRook] = boardOf(NewSquare(7, 4))
	pos.Pieces[PlayerKing] = boardOf(NewSquare(7, 0))
	pos.EngineToMove = true
	pos.Update()

	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.Moving != EngineRook {
			continue
		}
		if m.To.Col() != 4 {
			t.Fatalf("pinned rook made an off-ray move to %v", m.To)
		}
	}
}

func TestEnPassantCaptureAvailable(t *testing.T) {
	pos := NewPosition()
	// Engine pawn d2-d4-d5 style push to rank adjacent to a player pawn,
	// then the player double-pushes past it.
	applyBySquares := func(from, to Square) {
		m := Move{Type: Normal, From: from, To: to, Moving: pos.PieceAt(from), Captured: pos.PieceAt(to)}
		pos.Apply(m)
	}
	applyBySquares(NewSquare(1, 4), NewSquare(3, 4)) // engine pawn d-file double push
	applyBySquares(NewSquare(6, 0), NewSquare(5, 0)) // player shuffles a pawn
	applyBySquares(NewSquare(3, 4), NewSquare(4, 4)) // engine pawn advances to rank adjacent to black's e-pawn
	applyBySquares(NewSquare(6, 3), NewSquare(4, 3)) // player double-pushes e-file pawn beside the engine pawn

	if pos.EnPassantCapture == Empty {
		t.Fatal("expected an en passant target after the double push")
	}

	var found bool
	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.Type == EnPassant {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a legal en passant capture to be generated")
	}
}

func TestCastlingKingsideAvailableWhenClear(t *testing.T) {
	pos := &Position{
		EngineCastleKingside: true,
	}
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 3))
	pos.Pieces[EngineRook] = boardOf(NewSquare(0, 0))
	pos.Pieces[PlayerKing] = boardOf(NewSquare(7, 7))
	pos.EngineToMove = true
	pos.Update()

	var found bool
	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.Moving == EngineKing && m.To == EngineKingsideDest.LSB() {
			found = true
		}
	}
	if !found {
		t.Fatal("expected kingside castling to be legal with a clear path and no attacks")
	}
}

func TestEnPassantRejectedByDiscoveredCheck(t *testing.T) {
	// Player king and an engine rook share row 4; a player pawn sits
	// between them ready to capture an engine pawn en passant. Taking it
	// would remove both pawns from the rank and expose the player king
	// to the rook along the same rank, so the capture must not appear in
	// the legal move list.
	pos := &Position{}
	pos.Pieces[PlayerKing] = boardOf(NewSquare(4, 0))
	pos.Pieces[PlayerPawn] = boardOf(NewSquare(4, 1))
	pos.Pieces[EnginePawn] = boardOf(NewSquare(4, 2))
	pos.Pieces[EngineRook] = boardOf(NewSquare(4, 7))
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 4))
	pos.EnPassantCapture = boardOf(NewSquare(4, 2))
	pos.EngineToMove = false
	pos.Update()

	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.Type == EnPassant {
			t.Fatalf("en passant capture %v should be rejected: it discovers check along row 4", m)
		}
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	pos := &Position{
		EngineCastleKingside: true,
	}
	pos.Pieces[EngineKing] = boardOf(NewSquare(0, 3))
	pos.Pieces[EngineRook] = boardOf(NewSquare(0, 0))
	pos.Pieces[PlayerKing] = boardOf(NewSquare(7, 7))
	// A player rook covers the square the king must pass through.
	pos.Pieces[PlayerRook] = boardOf(NewSquare(5, 2))
	pos.EngineToMove = true
	pos.Update()

	moves := GenerateLegalMoves(pos)
	for _, m := range moves.Slice() {
		if m.Moving == EngineKing && m.To == EngineKingsideDest.LSB() {
			t.Fatal("castling should be illegal while passing through an attacked square")
		}
	}
}
