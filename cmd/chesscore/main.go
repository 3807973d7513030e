// Command chesscore runs the Ebitengine chess board.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesscore/internal/store"
	"github.com/hailam/chesscore/internal/ui"
)

func main() {
	dbDir, err := store.DefaultDir()
	if err != nil {
		log.Fatal("could not resolve data directory: ", err)
	}

	game, err := ui.NewGame(dbDir)
	if err != nil {
		log.Fatal("could not start game: ", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(ui.BoardSize, ui.BoardSize)
	ebiten.SetWindowTitle("chesscore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
