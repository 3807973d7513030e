// Package ui implements a minimal Ebitengine chess board host.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var boldFace *text.GoTextFace

const pieceFontSize = 28.0

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("failed to load piece font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{
		Source: source,
		Size:   pieceFontSize,
	}
}

// GetBoldFace returns the font face used to draw piece letters.
func GetBoldFace() *text.GoTextFace {
	return boldFace
}
