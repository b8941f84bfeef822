// Package fonts turns the font resources enabled in an lvconf.Set into
// drawable faces.
//
// The Montserrat bitmaps compiled into the firmware are not available to
// host tools, so every slot is backed by the Go Regular TrueType font at the
// slot's pixel size. Metrics therefore match in size, not in glyph shape.
package fonts

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rook-computer/lvconf/internal/logging"
	"github.com/rook-computer/lvconf/internal/lvconf"
)

// ErrMissingGlyphs is returned when the font data cannot draw printable ASCII.
var ErrMissingGlyphs = errors.New("font lacks printable ASCII glyphs")

// DPI makes one point equal one pixel, matching how the library sizes fonts.
const DPI = 72

// Registry holds one face per enabled font.
type Registry struct {
	faces       [lvconf.NumFonts]font.Face
	enabled     []lvconf.FontID
	defaultFont lvconf.FontID
}

// NewRegistry loads a face for every font the set enables. data is the
// TrueType/OpenType file to use; nil selects the built-in Go Regular font.
func NewRegistry(set *lvconf.Set, data []byte, logger logging.Logger) (*Registry, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if data == nil {
		data = goregular.TTF
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	if missing := missingASCII(tt); missing != 0 {
		return nil, fmt.Errorf("%w: first missing %q", ErrMissingGlyphs, missing)
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse opentype: %w", err)
	}

	r := &Registry{defaultFont: set.DefaultFont()}
	for _, id := range set.EnabledFonts() {
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    float64(id.Size()),
			DPI:     DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("face %s: %w", id, err)
		}
		r.faces[id] = face
		r.enabled = append(r.enabled, id)
		logger.Infof("fonts", "loaded %s at %dpx", id.Symbol(), id.Size())
	}
	return r, nil
}

func missingASCII(tt *truetype.Font) rune {
	for c := rune(0x21); c <= 0x7e; c++ {
		if tt.Index(c) == 0 {
			return c
		}
	}
	return 0
}

// Face returns the face of an enabled font.
func (r *Registry) Face(id lvconf.FontID) (font.Face, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %s", lvconf.ErrUnknownFont, id)
	}
	if r.faces[id] == nil {
		return nil, fmt.Errorf("%w: %s", lvconf.ErrFontDisabled, id.Symbol())
	}
	return r.faces[id], nil
}

// Default returns the face of the set's default font. A Registry built
// from a valid Set always has it.
func (r *Registry) Default() font.Face { return r.faces[r.defaultFont] }

func (r *Registry) DefaultID() lvconf.FontID { return r.defaultFont }

// Enabled lists the loaded fonts in ascending size order.
func (r *Registry) Enabled() []lvconf.FontID {
	out := make([]lvconf.FontID, len(r.enabled))
	copy(out, r.enabled)
	return out
}

// Secondary returns the largest enabled font other than the default, or
// the default when it is the only one.
func (r *Registry) Secondary() lvconf.FontID {
	for i := len(r.enabled) - 1; i >= 0; i-- {
		if r.enabled[i] != r.defaultFont {
			return r.enabled[i]
		}
	}
	return r.defaultFont
}

// LineHeight is the face's line height in whole pixels.
func (r *Registry) LineHeight(id lvconf.FontID) (int, error) {
	face, err := r.Face(id)
	if err != nil {
		return 0, err
	}
	return face.Metrics().Height.Ceil(), nil
}

func (r *Registry) Close() error {
	var errs []error
	for i, f := range r.faces {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		r.faces[i] = nil
	}
	return errors.Join(errs...)
}
