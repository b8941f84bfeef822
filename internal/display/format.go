package display

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/lvconf/internal/lvconf"
)

// Format is the pixel layout of the library's draw buffers as chosen by
// LV_COLOR_DEPTH, LV_COLOR_16_SWAP and LV_COLOR_SCREEN_TRANSP.
//
//	1  I1, one bit per pixel, MSB first, rows padded to a byte
//	8  L8, 8-bit luminance
//	16 RGB565, little endian (big endian when Swap16)
//	24 RGB888, stored B G R
//	32 ARGB8888, stored B G R A
type Format struct {
	Depth       int
	Swap16      bool
	Transparent bool
}

// FormatOf reads the pixel format of a set.
func FormatOf(set *lvconf.Set) Format {
	c := set.Config().Color
	return Format{Depth: c.Depth, Swap16: c.Swap16, Transparent: c.ScreenTransparent}
}

func (f Format) String() string {
	switch f.Depth {
	case 1:
		return "I1"
	case 8:
		return "L8"
	case 16:
		if f.Swap16 {
			return "RGB565_SWAP"
		}
		return "RGB565"
	case 24:
		return "RGB888"
	case 32:
		return "ARGB8888"
	}
	return fmt.Sprintf("depth(%d)", f.Depth)
}

// Stride is the number of bytes in one row of width pixels.
func (f Format) Stride(width int) int {
	if f.Depth == 1 {
		return (width + 7) / 8
	}
	return width * f.Depth / 8
}

// EncodePixel packs c into the format's native pixel value. For 16-bit
// swapped formats the two bytes of the RGB565 value are exchanged.
func EncodePixel(c color.Color, f Format) (uint32, error) {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b, a := uint32(rgba.R), uint32(rgba.G), uint32(rgba.B), uint32(rgba.A)

	switch f.Depth {
	case 1:
		if luma(rgba) >= 0x80 {
			return 1, nil
		}
		return 0, nil
	case 8:
		return uint32(luma(rgba)), nil
	case 16:
		v := (r>>3)<<11 | (g>>2)<<5 | b>>3
		if f.Swap16 {
			v = (v&0xff)<<8 | v>>8
		}
		return v, nil
	case 24:
		return r<<16 | g<<8 | b, nil
	case 32:
		if !f.Transparent {
			a = 0xff
		}
		return a<<24 | r<<16 | g<<8 | b, nil
	}
	return 0, fmt.Errorf("%w: %d", lvconf.ErrUnsupportedColorDepth, f.Depth)
}

// Quantize returns the color the panel shows for c: c encoded in f and
// expanded back to 8 bits per channel.
func Quantize(c color.Color, f Format) (color.NRGBA, error) {
	v, err := EncodePixel(c, f)
	if err != nil {
		return color.NRGBA{}, err
	}
	switch f.Depth {
	case 1:
		l := uint8(v * 0xff)
		return color.NRGBA{R: l, G: l, B: l, A: 0xff}, nil
	case 8:
		l := uint8(v)
		return color.NRGBA{R: l, G: l, B: l, A: 0xff}, nil
	case 16:
		if f.Swap16 {
			v = (v&0xff)<<8 | v>>8
		}
		r5, g6, b5 := v>>11&0x1f, v>>5&0x3f, v&0x1f
		return color.NRGBA{
			R: uint8(r5<<3 | r5>>2),
			G: uint8(g6<<2 | g6>>4),
			B: uint8(b5<<3 | b5>>2),
			A: 0xff,
		}, nil
	case 24:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	default:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}, nil
	}
}

// Encode converts img into a row-major buffer in format f.
func Encode(img image.Image, f Format) ([]byte, error) {
	if _, err := EncodePixel(color.Black, f); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := f.Stride(width)
	out := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		row := out[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			v, err := EncodePixel(img.At(bounds.Min.X+x, bounds.Min.Y+y), f)
			if err != nil {
				return nil, err
			}
			switch f.Depth {
			case 1:
				row[x/8] |= byte(v) << (7 - uint(x%8))
			case 8:
				row[x] = byte(v)
			case 16:
				binary.LittleEndian.PutUint16(row[x*2:], uint16(v))
			case 24:
				row[x*3] = byte(v)
				row[x*3+1] = byte(v >> 8)
				row[x*3+2] = byte(v >> 16)
			case 32:
				binary.LittleEndian.PutUint32(row[x*4:], v)
			}
		}
	}
	return out, nil
}

// luma is the Rec. 601 luminance of c.
func luma(c color.NRGBA) uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}).(color.Gray).Y
}
