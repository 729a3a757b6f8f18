package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/dino-pairs/dino_pairs/internal/world"
)

// Viewport is the drawable area the grid is centered in, in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Rect is a card's screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (px, py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Card is one card on the board. Images for the front (Character) and back
// (Back motif) are resolved by the renderer's asset cache.
type Card struct {
	Rect      Rect
	Character world.CharacterID
	Back      string
	FaceUp    bool
	Matched   bool
}

// noCard marks an empty pending slot.
const noCard = -1

// Board is the card layout of one round plus its resolution state.
type Board struct {
	Cards []Card

	First        int  // index of the first pending card, or -1
	Second       int  // index of the second pending card, or -1
	Wait         int  // ticks left before the pending pair resolves
	PendingMatch bool // outcome recorded when the second card was turned

	MatchedPairs int
	TotalPairs   int
}

// GridPositions returns the card rectangles for profile p, row by row. Each
// row is centered horizontally and the whole grid vertically in vp.
func GridPositions(p world.Profile, vp Viewport) []Rect {
	gridH := p.Rows*p.CardHeight + (p.Rows-1)*p.Margin
	startY := (vp.Height - gridH) / 2

	rects := make([]Rect, 0, p.Slots())
	for r := 0; r < p.Rows; r++ {
		cols := p.RowColumns(r)
		rowW := cols*p.CardWidth + (cols-1)*p.Margin
		startX := (vp.Width - rowW) / 2
		y := startY + r*(p.CardHeight+p.Margin)
		for c := 0; c < cols; c++ {
			rects = append(rects, Rect{
				X: startX + c*(p.CardWidth+p.Margin),
				Y: y,
				W: p.CardWidth,
				H: p.CardHeight,
			})
		}
	}
	return rects
}

// LayoutBoard deals two cards for every character onto a shuffled grid.
// Each card gets a back motif drawn from backs. The profile must provide at
// least 2*len(chars) slots; a shortfall is a caller bug and panics.
func LayoutBoard(p world.Profile, chars []world.CharacterID, vp Viewport, rng *rand.Rand, backs []string) *Board {
	slots := GridPositions(p, vp)
	if len(slots) < 2*len(chars) {
		panic(fmt.Sprintf("layout: %d grid slots for %d pairs", len(slots), len(chars)))
	}
	rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	b := &Board{
		Cards:      make([]Card, 0, 2*len(chars)),
		First:      noCard,
		Second:     noCard,
		TotalPairs: len(chars),
	}
	for i, id := range chars {
		for _, rect := range slots[2*i : 2*i+2] {
			card := Card{Rect: rect, Character: id}
			if len(backs) > 0 {
				card.Back = backs[rng.IntN(len(backs))]
			}
			b.Cards = append(b.Cards, card)
		}
	}
	return b
}

// CardAt returns the index of the card under (x, y), or -1.
func (b *Board) CardAt(x, y int) int {
	for i := range b.Cards {
		if b.Cards[i].Rect.Contains(x, y) {
			return i
		}
	}
	return noCard
}

// Revealed counts cards that are face up but not yet matched.
func (b *Board) Revealed() int {
	n := 0
	for _, c := range b.Cards {
		if c.FaceUp && !c.Matched {
			n++
		}
	}
	return n
}

// Complete reports whether every pair has been found.
func (b *Board) Complete() bool {
	return b.MatchedPairs == b.TotalPairs
}
