package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 8

	// GlyphBlock is a solid cell, used for progress bars.
	GlyphBlock = 127
)

// FontAtlas holds the HUD glyph atlas and cached sub-images.
type FontAtlas struct {
	glyphs [atlasCols * atlasRows]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 plus a solid
// block glyph into one atlas image.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 32; code < atlasCols*atlasRows; code++ {
		cx := (code % atlasCols) * GlyphWidth
		cy := (code / atlasCols) * GlyphHeight
		if code == GlyphBlock {
			fillCell(img, cx, cy)
			continue
		}
		drawFontGlyph(img, face, cx, cy, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{}
	for code := range a.glyphs {
		x := (code % atlasCols) * GlyphWidth
		y := (code / atlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the sub-image for an ASCII code; anything else maps to '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

// drawFontGlyph centers a 7x13 basicfont glyph in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

func fillCell(img *image.NRGBA, cellX, cellY int) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			img.SetNRGBA(cellX+x, cellY+y, w)
		}
	}
}
