package render

import "image/color"

// Theme colors of the test card.
var (
	Foreground = color.RGBA{R: 0x90, G: 0x00, B: 0xFF, A: 0xFF} // #9000ff
	Background = color.RGBA{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF} // #ffdc00
)

// Default test card size: the ST7789 240x320 panel in landscape.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)
