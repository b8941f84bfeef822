// Package display pushes images to the configured panel in the pixel
// format the configuration selects.
package display

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/lvconf/internal/logging"
	"github.com/rook-computer/lvconf/internal/lvconf"
)

// DevicePath returns the Linux framebuffer the driver is exposed as. SPI
// panels are bound by fbtft and show up after the primary HDMI/DPI
// framebuffer.
func DevicePath(driver lvconf.Driver) string {
	if driver == lvconf.DriverNone {
		return "/dev/fb0"
	}
	return "/dev/fb1"
}

// surface is the subset of a framebuffer device the panel writes to.
type surface interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Panel is an open framebuffer plus the format its pixels are quantized to.
type Panel struct {
	dev    *fb.Device
	path   string
	format Format
	Logger logging.Logger
}

// Open opens the framebuffer at path. The format is checked before the
// device is touched.
func Open(path string, f Format, logger logging.Logger) (*Panel, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if _, err := EncodePixel(color.Black, f); err != nil {
		return nil, err
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer %s open, bounds=%dx%d, format=%s", path, bounds.Dx(), bounds.Dy(), f)
	return &Panel{dev: dev, path: path, format: f, Logger: logger}, nil
}

func (p *Panel) Bounds() image.Rectangle { return p.dev.Bounds() }

// Show scales img to the panel with nearest-neighbor sampling and writes
// each pixel as the configured format would render it.
func (p *Panel) Show(img image.Image) error {
	if p.dev == nil {
		return fmt.Errorf("panel %s is closed", p.path)
	}
	return blit(p.dev, img, p.format)
}

func (p *Panel) Close() error {
	if p.dev != nil {
		p.dev.Close()
		p.dev = nil
		p.Logger.Infof("fb", "framebuffer %s closed", p.path)
	}
	return nil
}

func blit(dst surface, src image.Image, f Format) error {
	bounds := dst.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	srcBounds := src.Bounds()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return nil
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcWidth)/dstWidth
			c, err := Quantize(src.At(sx, sy), f)
			if err != nil {
				return err
			}
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, c)
		}
	}
	return nil
}

// Simulate returns img as the panel would show it at its own size, for
// previews on machines without the panel.
func Simulate(img image.Image, f Format) (*image.NRGBA, error) {
	out := image.NewNRGBA(img.Bounds())
	if err := blit(out, img, f); err != nil {
		return nil, err
	}
	return out, nil
}
