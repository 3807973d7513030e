package ui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/store"
)

// Board dimensions in pixels.
const (
	BoardSize  = 640
	SquareSize = BoardSize / 8
)

var (
	errNotPlayersTurn = errors.New("it is not the player's turn")
	errIllegalMove    = errors.New("not a legal move")
)

// aiResult carries a finished engine search back to the Update loop.
type aiResult struct {
	move     board.Move
	score    int
	duration time.Duration
}

// Game implements ebiten.Game: a minimal driver around the four-function
// collaborator contract (piece_at, apply_player_move, request_engine_move,
// legal_moves_from). Grounded on the teacher's internal/ui/game.go, with
// the sprite/animation/settings/sound/NNUE machinery stripped out —
// nothing about board graphics is part of what this module exercises.
type Game struct {
	position       *board.Position
	legalMoves     board.MoveList
	selectedSquare board.Square
	dragging       bool
	dragSquare     board.Square
	lastMove       *board.Move

	renderer *Renderer

	mouseX, mouseY   int
	leftJustPressed  bool
	leftJustReleased bool

	engine   *engine.Engine
	store    *store.Store
	aiThink  bool
	aiResult chan aiResult

	gameOver   bool
	gameResult string
}

// NewGame creates a new game, opening the diagnostics store at dbDir.
func NewGame(dbDir string) (*Game, error) {
	st, err := store.Open(dbDir)
	if err != nil {
		return nil, err
	}

	pos := board.NewPosition()
	g := &Game{
		position:       pos,
		legalMoves:     board.GenerateLegalMoves(pos),
		selectedSquare: board.NoSquare,
		dragSquare:     board.NoSquare,
		renderer:       NewRenderer(BoardSize, SquareSize),
		engine:         engine.NewEngine(),
		store:          st,
		aiResult:       make(chan aiResult, 1),
	}
	return g, nil
}

// Close releases the diagnostics store.
func (g *Game) Close() error {
	return g.store.Close()
}

// PieceAt returns the piece occupying a square.
func (g *Game) PieceAt(sq board.Square) board.PieceKind {
	return g.position.PieceAt(sq)
}

// LegalMovesFrom returns the destination squares reachable from sq by
// whichever side is to move.
func (g *Game) LegalMovesFrom(sq board.Square) []board.Square {
	var dests []board.Square
	for _, m := range g.legalMoves.Slice() {
		if m.From == sq {
			dests = append(dests, m.To)
		}
	}
	return dests
}

// ApplyPlayerMove validates from/to (and an optional promotion choice)
// against the current legal move list and applies it. promotion may be
// board.Normal to mean "no preference", in which case an under-specified
// promotion defaults to a queen.
func (g *Game) ApplyPlayerMove(from, to board.Square, promotion board.MoveType) error {
	if g.position.SideToMove() != board.Player {
		return errNotPlayersTurn
	}
	m, ok := g.findMove(from, to, promotion)
	if !ok {
		return errIllegalMove
	}
	g.applyMove(m)
	return nil
}

func (g *Game) findMove(from, to board.Square, promotion board.MoveType) (board.Move, bool) {
	var queenPromo board.Move
	haveQueenPromo := false
	for _, m := range g.legalMoves.Slice() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Type == promotion {
			return m, true
		}
		if m.Type == board.QueenPromotion {
			queenPromo, haveQueenPromo = m, true
		}
	}
	if haveQueenPromo && promotion == board.Normal {
		return queenPromo, true
	}
	return board.Move{}, false
}

// RequestEngineMove runs a synchronous search and applies the result for
// the engine's side.
func (g *Game) RequestEngineMove() (board.Move, int) {
	move, score := g.engine.BestMove(g.position)
	g.applyMove(move)
	return move, score
}

func (g *Game) applyMove(m board.Move) {
	g.position.Apply(m)
	g.lastMove = &m
	g.legalMoves = board.GenerateLegalMoves(g.position)
	g.selectedSquare = board.NoSquare
	g.checkGameEnd()
}

func (g *Game) checkGameEnd() {
	if board.IsCheckmate(g.position) {
		g.gameOver = true
		g.gameResult = g.position.SideToMove().Opponent().String() + " wins by checkmate"
	} else if board.IsStalemate(g.position) {
		g.gameOver = true
		g.gameResult = "draw by stalemate"
	}
}

// Update advances one frame: drive the engine's turn in a goroutine so the
// GUI stays responsive while it searches, otherwise handle player clicks.
func (g *Game) Update() error {
	g.mouseX, g.mouseY = ebiten.CursorPosition()
	g.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	g.checkEngineResult()

	if g.gameOver {
		return nil
	}
	if g.position.SideToMove() == board.Engine {
		if !g.aiThink {
			g.startEngineThinking()
		}
		return nil
	}

	g.handleBoardInput()
	return nil
}

func (g *Game) startEngineThinking() {
	g.aiThink = true
	pos := *g.position
	go func() {
		start := time.Now()
		move, score := g.engine.BestMove(&pos)
		g.aiResult <- aiResult{move: move, score: score, duration: time.Since(start)}
	}()
}

func (g *Game) checkEngineResult() {
	if !g.aiThink {
		return
	}
	select {
	case res := <-g.aiResult:
		g.aiThink = false
		if err := g.store.RecordSearch(store.SearchRecord{
			Notation: res.move.Notation(),
			Score:    res.score,
			Depth:    g.engine.Depth(),
			Duration: res.duration,
		}); err != nil {
			// Diagnostics are best-effort; a failed log entry never blocks play.
		}
		g.applyMove(res.move)
	default:
	}
}

func (g *Game) handleBoardInput() {
	mx, my := g.mouseX, g.mouseY
	if mx < 0 || mx >= BoardSize || my < 0 || my >= BoardSize {
		return
	}

	if g.leftJustPressed {
		sq := g.renderer.ScreenToSquare(mx, my)
		if !sq.IsValid() {
			return
		}
		kind := g.position.PieceAt(sq)
		if kind != board.NoPiece && kind.Side() == board.Player {
			g.selectedSquare = sq
			g.dragging = true
			g.dragSquare = sq
			return
		}
		if g.selectedSquare.IsValid() {
			g.tryMove(g.selectedSquare, sq)
		}
		g.selectedSquare = board.NoSquare
	}

	if g.dragging && g.leftJustReleased {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq.IsValid() {
			g.tryMove(g.dragSquare, sq)
		}
		g.dragging = false
		g.dragSquare = board.NoSquare
	}
}

// tryMove applies a player move, defaulting promotions to a queen unless
// R/B/N is held down at the moment of the move.
func (g *Game) tryMove(from, to board.Square) {
	promotion := board.Normal
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyR):
		promotion = board.RookPromotion
	case ebiten.IsKeyPressed(ebiten.KeyB):
		promotion = board.BishopPromotion
	case ebiten.IsKeyPressed(ebiten.KeyN):
		promotion = board.KnightPromotion
	}
	_ = g.ApplyPlayerMove(from, to, promotion)
}

// Draw renders the board, highlights, and pieces.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	side := g.position.SideToMove()
	if board.InCheck(g.position, side) {
		g.renderer.DrawCheck(screen, g.position.Pieces[board.KingOf(side)].LSB())
	}

	g.renderer.DrawHighlights(screen, g.selectedSquare, &g.legalMoves, g.lastMove)
	g.renderer.DrawPieces(screen, g.position, g.dragging, g.dragSquare)

	if g.dragging {
		g.renderer.DrawDraggedPiece(screen, g.position.PieceAt(g.dragSquare), g.mouseX, g.mouseY)
	}
}

// Layout returns the fixed board dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BoardSize, BoardSize
}

// GameOver reports whether the game has ended, and how.
func (g *Game) GameOver() (bool, string) {
	return g.gameOver, g.gameResult
}
