package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

const (
	bannerSize = 56
	scoreSize  = 28
)

// Banner draws the round-complete overlay with Go Bold faces.
type Banner struct {
	title *text.GoTextFace
	score *text.GoTextFace
}

// NewBanner loads the embedded Go Bold font.
func NewBanner() (*Banner, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load banner font: %w", err)
	}
	return &Banner{
		title: &text.GoTextFace{Source: src, Size: bannerSize},
		score: &text.GoTextFace{Source: src, Size: scoreSize},
	}, nil
}

// Draw shades the screen and centers "Congratulations!" with the score
// below it.
func (b *Banner) Draw(screen *ebiten.Image, score int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayShade, false)

	cy := float64(h) / 2
	drawCentered(screen, "Congratulations!", b.title, float64(w)/2, cy-bannerSize)
	drawCentered(screen, fmt.Sprintf("Score: %d", score), b.score, float64(w)/2, cy+scoreSize/2)
}

func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64) {
	tw, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-tw/2, y)
	op.ColorScale.ScaleWithColor(bannerColor)
	text.Draw(screen, s, face, op)
}
