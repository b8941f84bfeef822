// Package render draws a test card for a configuration: one sample of each
// enabled widget category that has a visual, using the configured fonts.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/lvconf/internal/display"
	"github.com/rook-computer/lvconf/internal/fonts"
	"github.com/rook-computer/lvconf/internal/lvconf"
)

const (
	lineThickness   = 2
	borderThickness = 2
)

// Card is a rendered test card.
type Card struct {
	Image *image.RGBA
	// Drawn lists the widgets that have a sample on the card, in drawing order.
	Drawn []lvconf.Widget
	// Regions maps each drawn widget to the area it occupies.
	Regions map[lvconf.Widget]image.Rectangle
}

// TestCard renders set at width x height. Disabled widgets leave their area
// blank.
func TestCard(set *lvconf.Set, reg *fonts.Registry, width, height int) (*Card, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("test card size %dx%d", width, height)
	}
	secondary, err := reg.Face(reg.Secondary())
	if err != nil {
		return nil, err
	}

	card := &Card{
		Image:   image.NewRGBA(image.Rect(0, 0, width, height)),
		Regions: map[lvconf.Widget]image.Rectangle{},
	}
	draw.Draw(card.Image, card.Image.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	padding := max(height/40, 2)
	area := inset(card.Image.Bounds(), padding)

	// Label: driver, pixel format and fingerprint in the default font.
	titleFace := reg.Default()
	titleHeight := titleFace.Metrics().Height.Ceil()
	titleRect, rest := splitTop(area, titleHeight)
	if set.WidgetEnabled(lvconf.WidgetLabel) {
		title := fmt.Sprintf("%s  %s  %s", strings.ToUpper(set.Display().Key()), display.FormatOf(set), set.Fingerprint()[:8])
		drawText(card.Image, titleFace, title, titleRect.Min.X, titleRect.Min.Y, Foreground)
		card.add(lvconf.WidgetLabel, titleRect)
	}

	// Line: separator under the title.
	lineRect, rest := splitTop(rest, padding*2+lineThickness)
	lineRect = image.Rect(lineRect.Min.X, lineRect.Min.Y+padding, lineRect.Max.X, lineRect.Min.Y+padding+lineThickness)
	if set.WidgetEnabled(lvconf.WidgetLine) {
		fill(card.Image, lineRect, Foreground)
		card.add(lvconf.WidgetLine, lineRect)
	}

	textRect, canvasRect := splitLeft(rest, rest.Dx()*3/5)

	// Text area: the enabled widgets and fonts, one per line.
	if set.WidgetEnabled(lvconf.WidgetTextArea) {
		frame(card.Image, textRect, Foreground)
		lines := summaryLines(set, reg.Enabled(), reg.DefaultID())
		inner := inset(textRect, borderThickness+padding)
		lineHeight := secondary.Metrics().Height.Ceil()
		y := inner.Min.Y
		for _, line := range lines {
			if y+lineHeight > inner.Max.Y {
				break
			}
			drawText(card.Image, secondary, line, inner.Min.X, y, Foreground)
			y += lineHeight
		}
		card.add(lvconf.WidgetTextArea, textRect)
	}

	// Canvas: fingerprint QR code scaled into the remaining square.
	if set.WidgetEnabled(lvconf.WidgetCanvas) {
		square := centerSquare(inset(canvasRect, padding))
		if !square.Empty() {
			qr, err := FingerprintQR(set.Fingerprint(), square.Dx())
			if err != nil {
				return nil, err
			}
			xdraw.NearestNeighbor.Scale(card.Image, square, qr, qr.Bounds(), xdraw.Src, nil)
			card.add(lvconf.WidgetCanvas, square)
		}
	}

	return card, nil
}

func (c *Card) add(w lvconf.Widget, r image.Rectangle) {
	c.Drawn = append(c.Drawn, w)
	c.Regions[w] = r
}

// summaryLines lists what the configuration compiles in. Widgets without a
// sample on the card are listed too. The default font is starred.
func summaryLines(set *lvconf.Set, loaded []lvconf.FontID, def lvconf.FontID) []string {
	var lines []string
	for _, w := range set.EnabledWidgets() {
		lines = append(lines, "+ "+w.Key())
	}
	sizes := make([]string, 0, len(loaded))
	for _, id := range loaded {
		size := strconv.Itoa(id.Size())
		if id == def {
			size += "*"
		}
		sizes = append(sizes, size)
	}
	lines = append(lines, "fonts "+strings.Join(sizes, ","))
	return lines
}

// drawText draws text with its top-left corner at (x, y).
func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	baseline := y + face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func frame(dst draw.Image, r image.Rectangle, c color.Color) {
	t := borderThickness
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}
