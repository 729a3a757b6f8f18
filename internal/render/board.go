package render

import (
	"image/color"

	"github.com/dino-pairs/dino_pairs/internal/game"
	"github.com/dino-pairs/dino_pairs/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	backInset   = 8
	faceBorder  = 2
	frontMargin = 6
)

// BoardRenderer draws the environment background and the cards of a round.
// It only reads game state.
type BoardRenderer struct {
	assets *AssetStore
	envs   *world.Environments
}

// NewBoardRenderer creates a renderer drawing images from assets.
func NewBoardRenderer(assets *AssetStore, envs *world.Environments) *BoardRenderer {
	return &BoardRenderer{assets: assets, envs: envs}
}

// DrawBackground fills the screen with the environment image, or its color
// when the image is missing.
func (r *BoardRenderer) DrawBackground(screen *ebiten.Image, env world.HabitatID) {
	b := screen.Bounds()
	if img, ok := r.assets.Background(env, b.Dx(), b.Dy()); ok {
		screen.DrawImage(img, nil)
		return
	}
	screen.Fill(r.envs.Lookup(env).Color)
}

// DrawBoard draws every card in board order.
func (r *BoardRenderer) DrawBoard(screen *ebiten.Image, b *game.Board) {
	for i := range b.Cards {
		c := &b.Cards[i]
		switch {
		case c.Matched:
			r.drawFront(screen, c)
			fillRect(screen, c.Rect, cardMatched)
		case c.FaceUp:
			r.drawFront(screen, c)
		default:
			r.drawBack(screen, c)
		}
	}
}

func (r *BoardRenderer) drawFront(screen *ebiten.Image, c *game.Card) {
	fillRect(screen, c.Rect, cardFace)
	vector.StrokeRect(screen, float32(c.Rect.X), float32(c.Rect.Y), float32(c.Rect.W), float32(c.Rect.H),
		faceBorder, cardFaceBorder, false)

	w, h := c.Rect.W-2*frontMargin, c.Rect.H-2*frontMargin
	img := r.assets.Character(c.Character, w, h)
	drawAt(screen, img, c.Rect.X+frontMargin, c.Rect.Y+frontMargin)
}

func (r *BoardRenderer) drawBack(screen *ebiten.Image, c *game.Card) {
	if img, ok := r.assets.CardBack(c.Back, c.Rect.W, c.Rect.H); ok {
		drawAt(screen, img, c.Rect.X, c.Rect.Y)
		return
	}
	fillRect(screen, c.Rect, cardBackOuter)
	inner := game.Rect{
		X: c.Rect.X + backInset,
		Y: c.Rect.Y + backInset,
		W: c.Rect.W - 2*backInset,
		H: c.Rect.H - 2*backInset,
	}
	if inner.W > 0 && inner.H > 0 {
		fillRect(screen, inner, cardBackInner)
	}
}

func fillRect(screen *ebiten.Image, rc game.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), clr, false)
}

func drawAt(screen, img *ebiten.Image, x, y int) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}
