package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chesscore/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	PlayerPiece    color.RGBA
	EnginePiece    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255},
		DarkSquare:     color.RGBA{181, 136, 99, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		LegalMoveColor: color.RGBA{130, 151, 105, 200},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
		PlayerPiece:    color.RGBA{30, 30, 30, 255},
		EnginePiece:    color.RGBA{245, 245, 245, 255},
	}
}

// Renderer draws the board as colored squares with a text glyph per piece,
// a deliberately plain rendering compared to the teacher's sprite-sheet
// pieces and animation layer — nothing about board graphics is exercised
// by the underlying move generator or search.
type Renderer struct {
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := float32(col * r.squareSize)
			y := float32(row * r.squareSize)

			c := r.theme.LightSquare
			if (row+col)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws selection and legal move highlights.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, legalMoves *board.MoveList, lastMove *board.Move) {
	if lastMove != nil {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}
	if selected.IsValid() {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}
	if legalMoves != nil {
		for _, m := range legalMoves.Slice() {
			r.drawLegalMoveIndicator(screen, m.To)
		}
	}
}

// DrawCheck highlights the given side's king square.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}

func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x + r.squareSize/2)
	cy := float32(y + r.squareSize/2)
	radius := float32(r.squareSize) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws a text glyph for every occupied square, skipping the
// square currently being dragged.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position, dragging bool, dragSquare board.Square) {
	for sq := board.Square(0); sq < 64; sq++ {
		if dragging && sq == dragSquare {
			continue
		}
		kind := pos.PieceAt(sq)
		if kind == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.drawGlyph(screen, kind, x, y)
	}
}

// DrawDraggedPiece draws the piece being dragged centered on the mouse.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, kind board.PieceKind, mouseX, mouseY int) {
	if kind == board.NoPiece {
		return
	}
	half := r.squareSize / 2
	r.drawGlyph(screen, kind, mouseX-half, mouseY-half)
}

func (r *Renderer) drawGlyph(screen *ebiten.Image, kind board.PieceKind, x, y int) {
	face := GetBoldFace()
	if face == nil {
		return
	}
	letter := kind.Letter()
	if letter == 0 {
		letter = 'P'
	}
	c := r.theme.PlayerPiece
	if kind.Side() == board.Engine {
		c = r.theme.EnginePiece
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+float64(r.squareSize)*0.35, float64(y)+float64(r.squareSize)*0.2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, string(letter), face, op)
}

// SquareToScreen converts a board square to screen coordinates. Row 0 is
// already the top row, matching screen space directly — no rank flip is
// needed the way the teacher's a1-bottom layout requires.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.Col() * r.squareSize, sq.Row() * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square, or
// board.NoSquare if outside the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return board.NewSquare(y/r.squareSize, x/r.squareSize)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
