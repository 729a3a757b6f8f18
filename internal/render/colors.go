package render

import "image/color"

// HUD palette indices used by CellBuffer.
const (
	ColorNone       = 0 // transparent background
	ColorBlack      = 1
	ColorWhite      = 2
	ColorGray       = 3
	ColorDarkGray   = 4
	ColorYellow     = 5
	ColorLightCyan  = 6
	ColorLightRed   = 7
	ColorLightGreen = 8
	ColorBrown      = 9
)

// Palette maps HUD indices to colors.
var Palette = [...]color.RGBA{
	ColorNone:       {0, 0, 0, 0},
	ColorBlack:      {0, 0, 0, 255},
	ColorWhite:      {255, 255, 255, 255},
	ColorGray:       {170, 170, 170, 255},
	ColorDarkGray:   {85, 85, 85, 255},
	ColorYellow:     {255, 255, 85, 255},
	ColorLightCyan:  {85, 255, 255, 255},
	ColorLightRed:   {255, 85, 85, 255},
	ColorLightGreen: {85, 255, 85, 255},
	ColorBrown:      {170, 85, 0, 255},
}

// Card and overlay colors.
var (
	cardBackOuter   = color.RGBA{70, 130, 180, 255}
	cardBackInner   = color.RGBA{30, 100, 150, 255}
	cardFace        = color.RGBA{255, 255, 255, 255}
	cardFaceBorder  = color.RGBA{60, 60, 60, 255}
	cardMatched     = color.NRGBA{200, 200, 200, 128}
	overlayShade    = color.RGBA{0, 0, 0, 128}
	bannerColor     = color.RGBA{255, 255, 0, 255}
	placeholderFill = color.NRGBA{200, 200, 200, 128}
	placeholderLine = color.NRGBA{100, 100, 100, 255}
)
