package board

// EngineIsWhite fixes which side the engine plays, transcribed from
// original_source/Constants.h's ENGINE_IS_WHITE. The board layout,
// castling masks, and move-notation formula all key off this constant.
const EngineIsWhite = true

// SearchDepth is the fixed ply depth the fixed-depth search descends to,
// transcribed from original_source/Constants.h's SEARCH_DEPTH.
const SearchDepth = 5

// MaxEval/MinEval bound the static evaluation and search scores,
// transcribed from original_source/Constants.h.
const (
	MaxEval = 1 << 15
	MinEval = -MaxEval
)

// InitialBoard lays out the starting position, transcribed from
// original_source/Constants.h's INITIAL_BOARD. Square 0 is the top-left
// corner; the engine's back rank occupies squares 0-7, the player's
// occupies squares 56-63.
var InitialBoard = func() [64]PieceKind {
	engineKingCol, engineQueenCol := 4, 3
	playerKingCol, playerQueenCol := 4, 3
	if EngineIsWhite {
		engineKingCol, engineQueenCol = 3, 4
		playerKingCol, playerQueenCol = 3, 4
	}
	b := [64]PieceKind{}
	for i := range b {
		b[i] = NoPiece
	}
	backRank := func(row int, rook, knight, bishop, king, queen PieceKind, kingCol, queenCol int) {
		order := [8]PieceKind{rook, knight, bishop, NoPiece, NoPiece, bishop, knight, rook}
		order[kingCol] = king
		order[queenCol] = queen
		for col := 0; col < 8; col++ {
			b[NewSquare(row, col)] = order[col]
		}
	}
	backRank(0, EngineRook, EngineKnight, EngineBishop, EngineKing, EngineQueen, engineKingCol, engineQueenCol)
	backRank(7, PlayerRook, PlayerKnight, PlayerBishop, PlayerKing, PlayerQueen, playerKingCol, playerQueenCol)
	for col := 0; col < 8; col++ {
		b[NewSquare(1, col)] = EnginePawn
		b[NewSquare(6, col)] = PlayerPawn
	}
	return b
}()

// Center/pawn-band masks, transcribed verbatim from
// original_source/Constants.h — these are fixed row bands, independent of
// EngineIsWhite, since "forward" is a row direction (engine advances
// toward increasing rows; player toward decreasing rows) regardless of
// which color is assigned to the engine.
const (
	Center36Squares Bitboard = 0x007E7E7E7E7E7E00
	Center16Squares Bitboard = 0x00003C3C3C3C0000
	Center4Squares  Bitboard = 0x0000001818000000

	OuterSquares Bitboard = 0xFF818181818181FF
	FilledBoard  Bitboard = 0xFFFFFFFFFFFFFFFF

	EngineAdvancedPawns Bitboard = 0x00003C3C3C000000
	PlayerAdvancedPawns Bitboard = 0x0000003C3C3C0000
	PawnCenterSquares   Bitboard = 0x0000003C3C000000
)

// Castling bitmasks, computed once at init() time since Go has no
// compile-time ternary. Each pair of hex literals below is transcribed
// directly from original_source/Constants.h's ENGINE_IS_WHITE ?: ternaries.
var (
	PlayerKingsideCastle     Bitboard
	EngineKingsideCastle     Bitboard
	PlayerQueensideCastle    Bitboard
	EngineQueensideCastle    Bitboard
	EngineQueensideDest      Bitboard
	EngineKingsideDest       Bitboard
	PlayerKingsideDest       Bitboard
	PlayerQueensideDest      Bitboard
	PlayerKingsideRookHome   Bitboard
	EngineKingsideRookHome   Bitboard
	PlayerQueensideRookHome  Bitboard
	EngineQueensideRookHome  Bitboard
)

func init() {
	if EngineIsWhite {
		PlayerKingsideCastle = 0xE00000000000000
		EngineKingsideCastle = 0x00000000000000E
		PlayerQueensideCastle = 0x3800000000000000
		EngineQueensideCastle = 0x0000000000000038

		EngineQueensideDest = 0x0000000000000020
		EngineKingsideDest = 0x0000000000000002
		PlayerKingsideDest = 0x0200000000000000
		PlayerQueensideDest = 0x2000000000000000

		PlayerKingsideRookHome = 0x0100000000000000
		EngineKingsideRookHome = 0x0000000000000001
		PlayerQueensideRookHome = 0x8000000000000000
		EngineQueensideRookHome = 0x0000000000000080
	} else {
		PlayerKingsideCastle = 0x7000000000000000
		EngineKingsideCastle = 0x0000000000000070
		PlayerQueensideCastle = 0x1C00000000000000
		EngineQueensideCastle = 0x000000000000001C

		EngineQueensideDest = 0x0000000000000004
		EngineKingsideDest = 0x0000000000000040
		PlayerKingsideDest = 0x4000000000000000
		PlayerQueensideDest = 0x0400000000000000

		PlayerKingsideRookHome = 0x8000000000000000
		EngineKingsideRookHome = 0x0000000000000080
		PlayerQueensideRookHome = 0x0100000000000000
		EngineQueensideRookHome = 0x0000000000000001
	}
}

// KnightMoves and KingMoves are precomputed per-square attack tables,
// transcribed verbatim from original_source/Constants.h — the square
// numbering there matches Square's exactly, so no reindexing is needed.
var KnightMoves = [64]Bitboard{
	0x20400, 0x50800, 0xa1100, 0x142200, 0x284400, 0x508800, 0xa01000, 0x402000,
	0x2040004, 0x5080008, 0xa110011, 0x14220022, 0x28440044, 0x50880088, 0xa0100010, 0x40200020,
	0x204000402, 0x508000805, 0xa1100110a, 0x1422002214, 0x2844004428, 0x5088008850, 0xa0100010a0, 0x4020002040,
	0x20400040200, 0x50800080500, 0xa1100110a00, 0x142200221400, 0x284400442800, 0x508800885000, 0xa0100010a000, 0x402000204000,
	0x2040004020000, 0x5080008050000, 0xa1100110a0000, 0x14220022140000, 0x28440044280000, 0x50880088500000, 0xa0100010a00000, 0x40200020400000,
	0x204000402000000, 0x508000805000000, 0xa1100110a000000, 0x1422002214000000, 0x2844004428000000, 0x5088008850000000, 0xa0100010a0000000, 0x4020002040000000,
	0x400040200000000, 0x800080500000000, 0x1100110a00000000, 0x2200221400000000, 0x4400442800000000, 0x8800885000000000, 0x100010a000000000, 0x2000204000000000,
	0x4020000000000, 0x8050000000000, 0x110a0000000000, 0x22140000000000, 0x44280000000000, 0x88500000000000, 0x10a00000000000, 0x20400000000000,
}

var KingMoves = [64]Bitboard{
	0x302, 0x705, 0xe0a, 0x1c14, 0x3828, 0x7050, 0xe0a0, 0xc040,
	0x30203, 0x70507, 0xe0a0e, 0x1c141c, 0x382838, 0x705070, 0xe0a0e0, 0xc040c0,
	0x3020300, 0x7050700, 0xe0a0e00, 0x1c141c00, 0x38283800, 0x70507000, 0xe0a0e000, 0xc040c000,
	0x302030000, 0x705070000, 0xe0a0e0000, 0x1c141c0000, 0x3828380000, 0x7050700000, 0xe0a0e00000, 0xc040c00000,
	0x30203000000, 0x70507000000, 0xe0a0e000000, 0x1c141c000000, 0x382838000000, 0x705070000000, 0xe0a0e0000000, 0xc040c0000000,
	0x3020300000000, 0x7050700000000, 0xe0a0e00000000, 0x1c141c00000000, 0x38283800000000, 0x70507000000000, 0xe0a0e000000000, 0xc040c000000000,
	0x302030000000000, 0x705070000000000, 0xe0a0e0000000000, 0x1c141c0000000000, 0x3828380000000000, 0x7050700000000000, 0xe0a0e00000000000, 0xc040c00000000000,
	0x203000000000000, 0x507000000000000, 0xa0e000000000000, 0x141c000000000000, 0x2838000000000000, 0x5070000000000000, 0xa0e0000000000000, 0x40c0000000000000,
}
