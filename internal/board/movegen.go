package board

// generator holds the per-call working state for legal move generation:
// which squares can resolve a check in progress, and which friendly
// pieces are absolutely pinned to their own king along a cardinal (rank
// or file) or ordinal (diagonal) ray. Both are recomputed from scratch on
// every call to GenerateLegalMoves, mirroring
// original_source/MoveGen.cpp's generateEngineMoves/generatePlayerMoves,
// which recompute blockerSquares/cardinalPins/ordinalPins before
// generating a single move.
type generator struct {
	blockerSquares Bitboard
	cardinalPins   Bitboard
	ordinalPins    Bitboard
}

// maxGenDepth bounds the recursion depth GenerateLegalMoves can be
// nested to: far beyond SearchDepth or any realistic Perft depth, just a
// backstop against the depth counter running off the end of genBufs.
const maxGenDepth = 64

// genBufs is a pool of move buffers, one per recursion depth, indexed by
// genDepth. GenerateLegalMoves recurses through the negamax search and
// through Perft, each nested call one ply deeper than its caller; a
// single shared buffer would be overwritten mid-iteration by the very
// call that's ranging over it, so each depth gets its own slot instead.
// Within a slot the backing array is reused across every generation at
// that depth: genBufs[d] is cleared and refilled, never reallocated.
var (
	genBufs  [maxGenDepth]MoveList
	genDepth int
)

// GenerateLegalMoves returns every legal move for the side to move,
// ordered by moveScore (captures before quiet moves, favorable exchanges
// first). Grounded on original_source/MoveGen.cpp's per-side move
// generators plus getSortedMoves.
//
// Generation itself fills genBufs[d], the persistent buffer for the
// current recursion depth, clearing and reusing the same backing array
// across every call at that depth rather than allocating one. The
// return value is a copy of that buffer, matching getSortedMoves'
// std::vector-by-value return in original_source/Search.cpp: callers
// are free to hold onto the result (as internal/ui/game.go's Game does,
// across frames) without it being clobbered by a later call reusing the
// same depth's slot. Not safe to call concurrently from more than one
// goroutine at a time; the core assumes a single caller driving the
// search, same as original_source/Search.cpp's one shared MoveGen
// instance.
func GenerateLegalMoves(pos *Position) MoveList {
	d := genDepth
	genDepth++
	defer func() { genDepth-- }()

	s := pos.SideToMove()
	var g generator
	g.computeBlockerSquares(pos, s)
	g.computeCardinalPins(pos, s)
	g.computeOrdinalPins(pos, s)

	ml := &genBufs[d]
	ml.Clear()
	g.pawnMoves(pos, s, ml)
	g.knightMoves(pos, s, ml)
	g.bishopMoves(pos, s, ml)
	g.rookMoves(pos, s, ml)
	g.queenMoves(pos, s, ml)
	g.kingMoves(pos, s, ml)
	ml.Sort()

	return *ml
}

// HasLegalMoves reports whether the side to move has at least one legal
// move.
func HasLegalMoves(pos *Position) bool {
	moves := GenerateLegalMoves(pos)
	return moves.Len() > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(pos *Position) bool {
	return InCheck(pos, pos.SideToMove()) && !HasLegalMoves(pos)
}

// IsStalemate reports whether the side to move is stalemated.
func IsStalemate(pos *Position) bool {
	return !InCheck(pos, pos.SideToMove()) && !HasLegalMoves(pos)
}

// InCheck reports whether side s's king is currently attacked. Grounded
// on original_source/MoveGen.cpp's isKingInCheck, which delegates to
// isSafeSquare on the king's own square.
func InCheck(pos *Position, s Side) bool {
	return !isSafeSquare(pos, s, pos.kingSquare(s))
}

func (p *Position) sidePieces(s Side) Bitboard {
	if s == Engine {
		return p.EnginePieces
	}
	return p.PlayerPieces
}

// moveMask returns the squares a piece of side s may move to purely by
// occupancy: anything not occupied by one of s's own pieces.
func (p *Position) moveMask(s Side) Bitboard {
	if s == Engine {
		return p.PlayerOrEmpty
	}
	return p.EngineOrEmpty
}

// computeBlockerSquares finds every square that would resolve whatever
// check side s's king is currently in: FilledBoard if not in check, the
// checking piece's square unioned with the ray between it and the king
// if in check by a single slider (or just the checker's square if it's a
// knight/pawn), or Empty if in check by two attackers at once (only the
// king can move). Grounded on
// original_source/MoveGen.cpp::getBlockerSquares.
func (g *generator) computeBlockerSquares(pos *Position, s Side) {
	opp := s.Opponent()
	king := pos.kingSquare(s)
	occ := pos.OccupiedSquares

	cardFromKing := RookAttacks(king, occ)
	ordFromKing := BishopAttacks(king, occ)

	cardAttackers := cardFromKing & (pos.Pieces[QueenOf(opp)] | pos.Pieces[RookOf(opp)])
	ordAttackers := ordFromKing & (pos.Pieces[QueenOf(opp)] | pos.Pieces[BishopOf(opp)])
	knightAttackers := KnightMoves[king] & pos.Pieces[KnightOf(opp)]

	kingBoard := boardOf(king)
	var pawnAttackers Bitboard
	if s == Engine {
		pawnAttackers = (kingBoard.SouthEast() | kingBoard.SouthWest()) & pos.Pieces[PawnOf(opp)]
	} else {
		pawnAttackers = (kingBoard.NorthEast() | kingBoard.NorthWest()) & pos.Pieces[PawnOf(opp)]
	}

	attackers := cardAttackers | ordAttackers | knightAttackers | pawnAttackers

	switch attackers.PopCount() {
	case 0:
		g.blockerSquares = FilledBoard
	case 1:
		attackerSq := attackers.LSB()
		switch {
		case cardAttackers != 0:
			g.blockerSquares = (cardFromKing & RookAttacks(attackerSq, occ)) | attackers
		case ordAttackers != 0:
			g.blockerSquares = (ordFromKing & BishopAttacks(attackerSq, occ)) | attackers
		default:
			g.blockerSquares = attackers
		}
	default:
		g.blockerSquares = Empty
	}
}

// computeCardinalPins finds every friendly piece absolutely pinned to its
// king along a rank or file: the king's own rook-ray is recomputed with
// each "possibly pinned" friendly piece removed from occupancy, and any
// enemy queen or rook newly visible on that ray is an actual pinner.
// Grounded on original_source/MoveGen.cpp::getCardinalPins.
func (g *generator) computeCardinalPins(pos *Position, s Side) {
	opp := s.Opponent()
	king := pos.kingSquare(s)
	occ := pos.OccupiedSquares
	own := pos.sidePieces(s)

	kingRay := RookAttacks(king, occ)
	possiblyPinned := kingRay & own
	xrayOccupancy := occ &^ possiblyPinned
	xray := RookAttacks(king, xrayOccupancy)

	pinners := xray & (pos.Pieces[QueenOf(opp)] | pos.Pieces[RookOf(opp)])

	var pins Bitboard
	for pinners != 0 {
		pinner := pinners.PopLSB()
		pinnerRay := RookAttacks(pinner, xrayOccupancy)
		pins |= kingRay & pinnerRay
		pins |= boardOf(pinner)
	}
	g.cardinalPins = pins
}

// computeOrdinalPins is computeCardinalPins' diagonal counterpart.
// Grounded on original_source/MoveGen.cpp::getOrdinalPins.
func (g *generator) computeOrdinalPins(pos *Position, s Side) {
	opp := s.Opponent()
	king := pos.kingSquare(s)
	occ := pos.OccupiedSquares
	own := pos.sidePieces(s)

	kingRay := BishopAttacks(king, occ)
	possiblyPinned := kingRay & own
	xrayOccupancy := occ &^ possiblyPinned
	xray := BishopAttacks(king, xrayOccupancy)

	pinners := xray & (pos.Pieces[QueenOf(opp)] | pos.Pieces[BishopOf(opp)])

	var pins Bitboard
	for pinners != 0 {
		pinner := pinners.PopLSB()
		pinnerRay := BishopAttacks(pinner, xrayOccupancy)
		pins |= kingRay & pinnerRay
		pins |= boardOf(pinner)
	}
	g.ordinalPins = pins
}

// isSafeSquare reports whether sq would be free of attack if a king of
// side s stood on it. The king's own square is excluded from blocker
// occupancy before hashing the sliding attacks, so a king moving directly
// away from a slider along its own attack line can't appear falsely safe
// by "hiding" behind itself. Grounded on
// original_source/MoveGen.cpp::isSafeSquare.
func isSafeSquare(pos *Position, s Side, sq Square) bool {
	opp := s.Opponent()
	occWithoutOwnKing := pos.OccupiedSquares &^ pos.Pieces[KingOf(s)]

	cardAttackers := RookAttacks(sq, occWithoutOwnKing) & (pos.Pieces[QueenOf(opp)] | pos.Pieces[RookOf(opp)])
	ordAttackers := BishopAttacks(sq, occWithoutOwnKing) & (pos.Pieces[QueenOf(opp)] | pos.Pieces[BishopOf(opp)])
	knightAttackers := KnightMoves[sq] & pos.Pieces[KnightOf(opp)]
	kingAttackers := KingMoves[sq] & pos.Pieces[KingOf(opp)]

	sqBoard := boardOf(sq)
	var pawnAttackers Bitboard
	if s == Engine {
		pawnAttackers = (sqBoard.SouthEast() | sqBoard.SouthWest()) & pos.Pieces[PawnOf(opp)]
	} else {
		pawnAttackers = (sqBoard.NorthEast() | sqBoard.NorthWest()) & pos.Pieces[PawnOf(opp)]
	}

	attackers := cardAttackers | ordAttackers | knightAttackers | kingAttackers | pawnAttackers
	return attackers == Empty
}

// knightMoves generates legal knight moves. A pinned knight, cardinally
// or ordinally, has no legal moves at all: no knight move stays on a
// straight-line ray. Grounded on
// original_source/MoveGen.cpp::generateKnightMoves.
func (g *generator) knightMoves(pos *Position, s Side, ml *MoveList) {
	knights := pos.Pieces[KnightOf(s)] &^ (g.cardinalPins | g.ordinalPins)
	mask := pos.moveMask(s) & g.blockerSquares
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightMoves[from] & mask
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(Move{Type: Normal, From: from, To: to, Moving: KnightOf(s), Captured: pos.PieceAt(to)})
		}
	}
}

// bishopMoves generates legal bishop moves. A cardinally pinned bishop
// has no legal moves (no diagonal stays on a rank/file pin ray); an
// ordinally pinned bishop is restricted to its own pin ray. Grounded on
// original_source/MoveGen.cpp::generateBishopMoves.
func (g *generator) bishopMoves(pos *Position, s Side, ml *MoveList) {
	bishops := pos.Pieces[BishopOf(s)] &^ g.cardinalPins
	own := pos.sidePieces(s)
	occ := pos.OccupiedSquares
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, occ) &^ own & g.blockerSquares
		if boardOf(from)&g.ordinalPins != 0 {
			targets &= g.ordinalPins
		}
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(Move{Type: Normal, From: from, To: to, Moving: BishopOf(s), Captured: pos.PieceAt(to)})
		}
	}
}

// rookMoves is bishopMoves' cardinal counterpart. Grounded on
// original_source/MoveGen.cpp::generateRookMoves.
func (g *generator) rookMoves(pos *Position, s Side, ml *MoveList) {
	rooks := pos.Pieces[RookOf(s)] &^ g.ordinalPins
	own := pos.sidePieces(s)
	occ := pos.OccupiedSquares
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, occ) &^ own & g.blockerSquares
		if boardOf(from)&g.cardinalPins != 0 {
			targets &= g.cardinalPins
		}
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(Move{Type: Normal, From: from, To: to, Moving: RookOf(s), Captured: pos.PieceAt(to)})
		}
	}
}

// queenMoves generates legal queen moves as the union of a rook's moves
// and a bishop's moves, each independently gated by the other axis' pin:
// cardinal (straight) moves are only generated when the queen isn't
// ordinally pinned, and vice versa. A queen pinned on both axes at once
// (by two different pinners) has no legal moves, which falls out of the
// two conditions naturally. Grounded on
// original_source/MoveGen.cpp::generateQueenMoves.
func (g *generator) queenMoves(pos *Position, s Side, ml *MoveList) {
	queens := pos.Pieces[QueenOf(s)]
	own := pos.sidePieces(s)
	occ := pos.OccupiedSquares
	for queens != 0 {
		from := queens.PopLSB()
		fromBoard := boardOf(from)
		cardPinned := fromBoard&g.cardinalPins != 0
		ordPinned := fromBoard&g.ordinalPins != 0

		var targets Bitboard
		if !cardPinned {
			ord := BishopAttacks(from, occ) &^ own & g.blockerSquares
			if ordPinned {
				ord &= g.ordinalPins
			}
			targets |= ord
		}
		if !ordPinned {
			card := RookAttacks(from, occ) &^ own & g.blockerSquares
			if cardPinned {
				card &= g.cardinalPins
			}
			targets |= card
		}
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(Move{Type: Normal, From: from, To: to, Moving: QueenOf(s), Captured: pos.PieceAt(to)})
		}
	}
}

// kingMoves generates ordinary king steps plus castling. Grounded on
// original_source/MoveGen.cpp::generateKingMoves.
func (g *generator) kingMoves(pos *Position, s Side, ml *MoveList) {
	from := pos.kingSquare(s)
	own := pos.sidePieces(s)
	targets := KingMoves[from] &^ own
	for targets != 0 {
		to := targets.PopLSB()
		if isSafeSquare(pos, s, to) {
			ml.Add(Move{Type: Normal, From: from, To: to, Moving: KingOf(s), Captured: pos.PieceAt(to)})
		}
	}
	castlingMoves(pos, s, ml, from)
}

// squaresBetween returns the squares strictly between a and b on the
// same rank, exclusive of both endpoints.
func squaresBetween(a, b Square) Bitboard {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var mask Bitboard
	for sq := lo + 1; sq < hi; sq++ {
		mask = mask.Set(sq)
	}
	return mask
}

// walkSafe reports whether every square in path would be safe for a king
// of side s to occupy, used to verify a castle doesn't move through or
// out of check.
func walkSafe(pos *Position, s Side, path Bitboard) bool {
	for path != 0 {
		sq := path.PopLSB()
		if !isSafeSquare(pos, s, sq) {
			return false
		}
	}
	return true
}

// castlingMoves adds legal castling moves for side s. The emptiness
// check covers only the squares strictly between king and rook; the
// safety walk covers the king's own square through its destination
// (original_source/Constants.h's *_KINGSIDE_CASTLE/*_QUEENSIDE_CASTLE
// masks, which include both endpoints by construction) — so castling
// out of check is rejected by the same walk, with no separate check
// needed. Grounded on original_source/MoveGen.cpp::generateKingMoves.
func castlingMoves(pos *Position, s Side, ml *MoveList, from Square) {
	isEngine := s == Engine
	occ := pos.OccupiedSquares

	var kingsideRight, queensideRight bool
	var kingsideWalk, queensideWalk Bitboard
	var kingsideDest, queensideDest Bitboard
	var kingsideRookHome, queensideRookHome Bitboard
	if isEngine {
		kingsideRight, queensideRight = pos.EngineCastleKingside, pos.EngineCastleQueenside
		kingsideWalk, queensideWalk = EngineKingsideCastle, EngineQueensideCastle
		kingsideDest, queensideDest = EngineKingsideDest, EngineQueensideDest
		kingsideRookHome, queensideRookHome = EngineKingsideRookHome, EngineQueensideRookHome
	} else {
		kingsideRight, queensideRight = pos.PlayerCastleKingside, pos.PlayerCastleQueenside
		kingsideWalk, queensideWalk = PlayerKingsideCastle, PlayerQueensideCastle
		kingsideDest, queensideDest = PlayerKingsideDest, PlayerQueensideDest
		kingsideRookHome, queensideRookHome = PlayerKingsideRookHome, PlayerQueensideRookHome
	}

	if kingsideRight {
		between := squaresBetween(from, kingsideRookHome.LSB())
		if occ&between == Empty && walkSafe(pos, s, kingsideWalk) {
			ml.Add(Move{Type: Normal, From: from, To: kingsideDest.LSB(), Moving: KingOf(s), Captured: NoPiece})
		}
	}
	if queensideRight {
		between := squaresBetween(from, queensideRookHome.LSB())
		if occ&between == Empty && walkSafe(pos, s, queensideWalk) {
			ml.Add(Move{Type: Normal, From: from, To: queensideDest.LSB(), Moving: KingOf(s), Captured: NoPiece})
		}
	}
}

// cardinalPinFilter reports whether a pawn push from `from` to `to`
// (same file) respects a cardinal pin: unpinned pawns always pass; a
// pinned pawn may only push along its own pin ray.
func (g *generator) cardinalPinFilter(from, to Square) bool {
	if boardOf(from)&g.cardinalPins == 0 {
		return true
	}
	return boardOf(to)&g.cardinalPins != 0
}

func (g *generator) addPawnMove(ml *MoveList, s Side, from, to Square, captured PieceKind, promoRow Bitboard) {
	if boardOf(to)&promoRow != 0 {
		ml.Add(Move{Type: QueenPromotion, From: from, To: to, Moving: PawnOf(s), Captured: captured})
		ml.Add(Move{Type: RookPromotion, From: from, To: to, Moving: PawnOf(s), Captured: captured})
		ml.Add(Move{Type: BishopPromotion, From: from, To: to, Moving: PawnOf(s), Captured: captured})
		ml.Add(Move{Type: KnightPromotion, From: from, To: to, Moving: PawnOf(s), Captured: captured})
		return
	}
	ml.Add(Move{Type: Normal, From: from, To: to, Moving: PawnOf(s), Captured: captured})
}

// pawnMoves generates legal pawn pushes, captures, and en passant.
// Grounded on original_source/MoveGen.cpp::generatePawnMoves, the single
// most involved generator: pushes exclude ordinally pinned pawns
// entirely but allow cardinally pinned ones along their own pin ray;
// captures exclude cardinally pinned pawns entirely but allow ordinally
// pinned ones along their own pin ray; en passant additionally checks
// for a rank-pin discovered by removing both the capturing and captured
// pawn from occupancy at once.
func (g *generator) pawnMoves(pos *Position, s Side, ml *MoveList) {
	isEngine := s == Engine
	opp := s.Opponent()
	pawns := pos.Pieces[PawnOf(s)]
	empty := pos.EmptySquares
	enemyOcc := pos.sidePieces(opp)

	var startRow, promoRow Bitboard
	if isEngine {
		startRow, promoRow = Row1, Row7
	} else {
		startRow, promoRow = Row6, Row0
	}

	pushers := pawns &^ g.ordinalPins
	for pushers != 0 {
		from := pushers.PopLSB()
		fromBoard := boardOf(from)

		var single Bitboard
		if isEngine {
			single = fromBoard.South() & empty
		} else {
			single = fromBoard.North() & empty
		}
		if single == 0 {
			continue
		}
		to := single.LSB()
		if g.cardinalPinFilter(from, to) && single&g.blockerSquares != 0 {
			g.addPawnMove(ml, s, from, to, NoPiece, promoRow)
		}

		if fromBoard&startRow == 0 {
			continue
		}
		var double Bitboard
		if isEngine {
			double = single.South() & empty
		} else {
			double = single.North() & empty
		}
		if double == 0 {
			continue
		}
		to2 := double.LSB()
		if g.cardinalPinFilter(from, to2) && double&g.blockerSquares != 0 {
			ml.Add(Move{Type: Normal, From: from, To: to2, Moving: PawnOf(s), Captured: NoPiece})
		}
	}

	capturers := pawns &^ g.cardinalPins
	for capturers != 0 {
		from := capturers.PopLSB()
		fromBoard := boardOf(from)
		var left, right Bitboard
		if isEngine {
			left, right = fromBoard.SouthWest()&enemyOcc, fromBoard.SouthEast()&enemyOcc
		} else {
			left, right = fromBoard.NorthWest()&enemyOcc, fromBoard.NorthEast()&enemyOcc
		}
		for _, target := range [2]Bitboard{left, right} {
			if target == 0 || target&g.blockerSquares == 0 {
				continue
			}
			to := target.LSB()
			if fromBoard&g.ordinalPins != 0 && target&g.ordinalPins == 0 {
				continue
			}
			g.addPawnMove(ml, s, from, to, pos.PieceAt(to), promoRow)
		}
	}

	if pos.EnPassantCapture == Empty {
		return
	}
	capturedSq := pos.EnPassantCapture.LSB()
	attackers := (pos.EnPassantCapture.East() | pos.EnPassantCapture.West()) & pawns
	for attackers != 0 {
		from := attackers.PopLSB()
		var to Square
		if isEngine {
			to = NewSquare(capturedSq.Row()+1, capturedSq.Col())
		} else {
			to = NewSquare(capturedSq.Row()-1, capturedSq.Col())
		}
		if boardOf(to)&g.blockerSquares == 0 {
			continue
		}
		if boardOf(from)&g.ordinalPins != 0 && boardOf(to)&g.ordinalPins == 0 {
			continue
		}

		occWithoutBoth := pos.OccupiedSquares &^ (boardOf(from) | pos.EnPassantCapture)
		rayPieces := RookAttacks(from, occWithoutBoth) & RowMask[from.Row()] &
			(pos.Pieces[KingOf(s)] | pos.Pieces[QueenOf(opp)] | pos.Pieces[RookOf(opp)])
		if rayPieces&pos.Pieces[KingOf(s)] != 0 && rayPieces.PopCount() == 2 {
			continue
		}

		ml.Add(Move{Type: EnPassant, From: from, To: to, Moving: PawnOf(s), Captured: PawnOf(opp)})
	}
}
