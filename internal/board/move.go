package board

import "sort"

// MoveType enumerates the special move categories. Promotion types occupy
// the first four values deliberately, matching original_source/Board.h's
// MoveType enum — code that needs to test "is this a promotion" checks
// `move.Type < EnPassant`, the same trick makeMove<isEngine> uses.
type MoveType int

const (
	QueenPromotion MoveType = iota
	KnightPromotion
	BishopPromotion
	RookPromotion
	EnPassant
	Normal
)

func (t MoveType) IsPromotion() bool {
	return t < EnPassant
}

// PromotionKind returns the piece kind a promotion type produces for the
// given side, or NoPiece if the move type is not a promotion.
func (t MoveType) PromotionKind(s Side) PieceKind {
	switch t {
	case QueenPromotion:
		return QueenOf(s)
	case RookPromotion:
		return RookOf(s)
	case BishopPromotion:
		return BishopOf(s)
	case KnightPromotion:
		return KnightOf(s)
	default:
		return NoPiece
	}
}

// Move is a plain record describing a single move: which piece moves from
// where to where, what special type it is, and what it captures (if
// anything). It has no independent lifecycle — no packed encoding, no
// undo metadata, no move-list membership state — matching
// original_source/Board.h's Move struct and the requirement that a move
// be nothing more than a value passed to Position.Apply.
type Move struct {
	Type     MoveType
	From     Square
	To       Square
	Moving   PieceKind
	Captured PieceKind
}

func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// Notation renders the move the way original_source/Board.cpp's
// getMoveNotation does: the moving piece's letter (omitted for pawns),
// "castle" for a king move spanning more than one file, an "x" before the
// destination square on a capture, then the destination square.
func (m Move) Notation() string {
	if m.Moving.IsKing() {
		fromCol, toCol := m.From.Col(), m.To.Col()
		d := fromCol - toCol
		if d < 0 {
			d = -d
		}
		if d > 1 {
			return "castle"
		}
	}
	s := ""
	if letter := m.Moving.Letter(); letter != 0 {
		s += string(letter)
	}
	if m.IsCapture() {
		s += "x"
	}
	s += m.To.String()
	return s
}

// MoveList is a fixed-capacity buffer of generated moves. GenerateLegalMoves
// fills one from its per-depth pool, clearing it with Clear before each
// generation so the backing array is reused across generations rather than
// reallocated, then hands the caller a copy.
type MoveList struct {
	moves [256]Move
	n     int
}

func (ml *MoveList) Clear() {
	ml.n = 0
}

func (ml *MoveList) Add(m Move) {
	ml.moves[ml.n] = m
	ml.n++
}

func (ml *MoveList) Len() int {
	return ml.n
}

func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.n]
}

// Sort orders the move list by descending moveScore: captures before
// quiet moves, and among captures, the most favorable exchanges first.
// original_source/MoveGen.cpp's getSortedMoves does this with a manual
// O(n^2) repeated-max-extraction selection sort; a stable sort over the
// same score function preserves the same relative ordering spec requires.
func (ml *MoveList) Sort() {
	s := ml.moves[:ml.n]
	sort.SliceStable(s, func(i, j int) bool {
		return moveScore(s[i]) > moveScore(s[j])
	})
}

// moveScore ranks a move for search ordering. Grounded on
// original_source/MoveGen.cpp's getSortedMoves scoring formula
// (QUEEN_VALUE + capturedValue - movingValue for captures, 0 for quiet
// moves).
func moveScore(m Move) int {
	if !m.IsCapture() {
		return 0
	}
	return QueenOf(Player).Value() + m.Captured.Value() - m.Moving.Value()
}
