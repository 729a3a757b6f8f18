package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is a single character cell of the HUD layer.
type Cell struct {
	Glyph byte
	FG    uint8 // Palette index
	BG    uint8 // Palette index; ColorNone leaves the scene visible
}

// CellBuffer is a 2D grid of HUD cells drawn over the board.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a buffer of blank, transparent cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{Glyph: ' '}
}

// Clear resets all cells to transparent blanks.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorNone}
	}
}

// WriteString writes s starting at (x, y), one byte per cell. Non-ASCII runes
// become '?'. Returns the column after the last written cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	for _, ch := range s {
		if ch >= GlyphBlock || ch < ' ' {
			ch = '?'
		}
		b.Set(x, y, byte(ch), fg, bg)
		x++
	}
	return x
}

// WriteCentered writes s centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len(s))/2, y, s, fg, bg)
}

// FillRow paints a full-width background band on row y.
func (b *CellBuffer) FillRow(y int, bg uint8) {
	for x := 0; x < b.Cols; x++ {
		b.Set(x, y, ' ', ColorWhite, bg)
	}
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image
}

// NewGridRenderer creates a renderer with the given atlas and cell size.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{Atlas: atlas, CellW: cellW, CellH: cellH, bgPixel: bgPixel}
}

// Draw renders every non-blank cell of buf.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorNone {
				var op ebiten.DrawImageOptions
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				var op ebiten.DrawImageOptions
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// CellAt converts a screen pixel to a cell coordinate.
func (r *GridRenderer) CellAt(px, py int) (int, int) {
	return px / r.CellW, py / r.CellH
}
