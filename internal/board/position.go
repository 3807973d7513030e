package board

import "fmt"

// Position is the full mutable board state: the twelve piece bitboards,
// castling rights, the en-passant capture square (as a bitboard, 0 if
// none), whose move it is, plus a handful of aggregate bitboards kept in
// sync by Update(). It is a plain value type passed by value, copied
// wholesale before a move and restored wholesale after — the same
// snapshot/restore discipline original_source/Search.cpp uses around its
// maximize/minimize recursion (`Position clone = board->position`)
// instead of incremental unmake. original_source keeps EngineToMove
// outside its Position struct and re-flips it by hand after restoring a
// snapshot; folding EngineToMove into Position here means the value copy
// already restores it, so no separate manual re-flip step is needed — a
// deliberate simplification recorded in DESIGN.md, not a functional
// change.
type Position struct {
	Pieces [12]Bitboard

	PlayerCastleQueenside bool
	PlayerCastleKingside  bool
	EngineCastleQueenside bool
	EngineCastleKingside  bool

	// EnPassantCapture is the bitboard of the square a pawn just
	// double-pushed to, capturable en passant this move only, or Empty.
	EnPassantCapture Bitboard

	EngineToMove bool

	// Derived aggregates, recomputed by Update() after every mutation.
	EnginePieces    Bitboard
	PlayerPieces    Bitboard
	OccupiedSquares Bitboard
	EmptySquares    Bitboard
	PlayerOrEmpty   Bitboard // squares an engine piece may move to
	EngineOrEmpty   Bitboard // squares a player piece may move to
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{
		PlayerCastleQueenside: true,
		PlayerCastleKingside:  true,
		EngineCastleQueenside: true,
		EngineCastleKingside:  true,
		EngineToMove:          EngineIsWhite,
	}
	for sq := Square(0); sq < 64; sq++ {
		kind := InitialBoard[sq]
		if kind != NoPiece {
			p.Pieces[kind] = p.Pieces[kind].Set(sq)
		}
	}
	p.Update()
	return p
}

// Update recomputes the derived aggregate bitboards from the twelve
// piece bitboards, mirroring original_source/Board.h's update().
func (p *Position) Update() {
	p.EnginePieces = p.Pieces[EnginePawn] | p.Pieces[EngineKnight] | p.Pieces[EngineBishop] |
		p.Pieces[EngineRook] | p.Pieces[EngineQueen] | p.Pieces[EngineKing]
	p.PlayerPieces = p.Pieces[PlayerPawn] | p.Pieces[PlayerKnight] | p.Pieces[PlayerBishop] |
		p.Pieces[PlayerRook] | p.Pieces[PlayerQueen] | p.Pieces[PlayerKing]
	p.OccupiedSquares = p.EnginePieces | p.PlayerPieces
	p.EmptySquares = ^p.OccupiedSquares
	p.PlayerOrEmpty = p.PlayerPieces | p.EmptySquares
	p.EngineOrEmpty = p.EnginePieces | p.EmptySquares
}

// PieceAt returns the piece kind occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) PieceKind {
	mask := boardOf(sq)
	if p.EmptySquares&mask != 0 {
		return NoPiece
	}
	for kind := PlayerPawn; kind < NoPiece; kind++ {
		if p.Pieces[kind]&mask != 0 {
			return kind
		}
	}
	debugAssertf(false, "occupied square %v matched no piece bitboard", sq)
	return NoPiece
}

// kingSquare returns the square of the given side's king.
func (p *Position) kingSquare(s Side) Square {
	return p.Pieces[KingOf(s)].LSB()
}

// Apply performs a move on the position, translating
// original_source/Board.h's makeMove<isEngine> line by line. isEngine is
// derived from the moving piece's own side rather than threaded through
// as a template parameter, since PieceKind already encodes side.
func (p *Position) Apply(m Move) {
	isEngine := m.Moving.Side() == Engine

	enPassant := p.EnPassantCapture
	p.EnPassantCapture = Empty

	squareTo := boardOf(m.To)
	squareFrom := boardOf(m.From)

	p.Pieces[m.Moving] ^= squareFrom

	if m.Type.IsPromotion() {
		p.Pieces[m.Type.PromotionKind(m.Moving.Side())] |= squareTo
	} else {
		p.Pieces[m.Moving] |= squareTo
	}

	if m.Captured != NoPiece {
		if m.Type == EnPassant {
			p.Pieces[m.Captured] ^= enPassant
		} else {
			p.Pieces[m.Captured] ^= squareTo
		}

		opponentRook := RookOf(m.Moving.Side().Opponent())
		if m.Captured == opponentRook {
			if isEngine {
				if p.PlayerCastleKingside && squareTo&PlayerKingsideRookHome != 0 {
					p.PlayerCastleKingside = false
				}
				if p.PlayerCastleQueenside && squareTo&PlayerQueensideRookHome != 0 {
					p.PlayerCastleQueenside = false
				}
			} else {
				if p.EngineCastleKingside && squareTo&EngineKingsideRookHome != 0 {
					p.EngineCastleKingside = false
				}
				if p.EngineCastleQueenside && squareTo&EngineQueensideRookHome != 0 {
					p.EngineCastleQueenside = false
				}
			}
		}
	}

	switch {
	case m.Moving == KingOf(m.Moving.Side()):
		hasCastleRight := func() bool {
			if isEngine {
				return p.EngineCastleKingside || p.EngineCastleQueenside
			}
			return p.PlayerCastleKingside || p.PlayerCastleQueenside
		}()
		if hasCastleRight {
			rook := RookOf(m.Moving.Side())
			kingsideDest := EngineKingsideDest
			queensideDest := EngineQueensideDest
			kingsideRookHome := EngineKingsideRookHome
			queensideRookHome := EngineQueensideRookHome
			if !isEngine {
				kingsideDest = PlayerKingsideDest
				queensideDest = PlayerQueensideDest
				kingsideRookHome = PlayerKingsideRookHome
				queensideRookHome = PlayerQueensideRookHome
			}
			if squareTo&kingsideDest != 0 {
				p.Pieces[rook] ^= kingsideRookHome
				if EngineIsWhite {
					p.Pieces[rook] |= squareTo << 1
				} else {
					p.Pieces[rook] |= squareTo >> 1
				}
			}
			if squareTo&queensideDest != 0 {
				p.Pieces[rook] ^= queensideRookHome
				if EngineIsWhite {
					p.Pieces[rook] |= squareTo >> 1
				} else {
					p.Pieces[rook] |= squareTo << 1
				}
			}
			if isEngine {
				p.EngineCastleKingside = false
				p.EngineCastleQueenside = false
			} else {
				p.PlayerCastleKingside = false
				p.PlayerCastleQueenside = false
			}
		}
	case m.Moving == RookOf(m.Moving.Side()):
		kingsideRookHome := EngineKingsideRookHome
		queensideRookHome := EngineQueensideRookHome
		if !isEngine {
			kingsideRookHome = PlayerKingsideRookHome
			queensideRookHome = PlayerQueensideRookHome
		}
		if isEngine {
			if p.EngineCastleKingside && squareFrom&kingsideRookHome != 0 {
				p.EngineCastleKingside = false
			}
			if p.EngineCastleQueenside && squareFrom&queensideRookHome != 0 {
				p.EngineCastleQueenside = false
			}
		} else {
			if p.PlayerCastleKingside && squareFrom&kingsideRookHome != 0 {
				p.PlayerCastleKingside = false
			}
			if p.PlayerCastleQueenside && squareFrom&queensideRookHome != 0 {
				p.PlayerCastleQueenside = false
			}
		}
	case m.Moving == PawnOf(m.Moving.Side()):
		delta := int(m.To) - int(m.From)
		if delta < 0 {
			delta = -delta
		}
		if delta == 16 {
			adjacentFiles := squareTo.East() | squareTo.West()
			landingRow := Row4
			if isEngine {
				landingRow = Row3
			}
			if adjacentFiles&landingRow&p.Pieces[PawnOf(m.Moving.Side().Opponent())] != 0 {
				p.EnPassantCapture = squareTo
			}
		}
	}

	p.Update()
	p.EngineToMove = !p.EngineToMove
}

func (p *Position) SideToMove() Side {
	return Side(p.EngineToMove)
}

func (p *Position) String() string {
	s := ""
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			kind := p.PieceAt(NewSquare(row, col))
			if kind == NoPiece {
				s += ". "
				continue
			}
			letter := kind.Letter()
			if letter == 0 {
				letter = 'p'
			}
			if kind.Side() == Engine {
				letter = letter - 'a' + 'A'
			}
			s += fmt.Sprintf("%c ", letter)
		}
		s += "\n"
	}
	return s
}
