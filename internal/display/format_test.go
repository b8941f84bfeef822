package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/lvconf/internal/lvconf"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func TestFormatOfDefaultSet(t *testing.T) {
	f := FormatOf(lvconf.MustBuild())
	assert.Equal(t, Format{Depth: 16}, f)
	assert.Equal(t, "RGB565", f.String())
	assert.Equal(t, 480, f.Stride(240))
}

func TestEncodePixelRGB565(t *testing.T) {
	plain := Format{Depth: 16}
	swapped := Format{Depth: 16, Swap16: true}

	cases := []struct {
		c           color.Color
		plain, swap uint32
	}{
		{red, 0xF800, 0x00F8},
		{green, 0x07E0, 0xE007},
		{white, 0xFFFF, 0xFFFF},
		{black, 0x0000, 0x0000},
	}
	for _, tc := range cases {
		v, err := EncodePixel(tc.c, plain)
		require.NoError(t, err)
		assert.Equal(t, tc.plain, v)
		v, err = EncodePixel(tc.c, swapped)
		require.NoError(t, err)
		assert.Equal(t, tc.swap, v)
	}
}

func TestEncodeByteOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, red)

	buf, err := Encode(img, Format{Depth: 16})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xF8}, buf)

	buf, err = Encode(img, Format{Depth: 16, Swap16: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF8, 0x00}, buf)

	img.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0x80})
	buf, err = Encode(img, Format{Depth: 24})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1}, buf)

	buf, err = Encode(img, Format{Depth: 32})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 0xFF}, buf)

	buf, err = Encode(img, Format{Depth: 32, Transparent: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 0x80}, buf)
}

func TestEncodeMonochromeAndGray(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		if x%2 == 0 {
			img.Set(x, 0, white)
		} else {
			img.Set(x, 0, black)
		}
	}

	buf, err := Encode(img, Format{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x80}, buf)

	buf, err = Encode(img, Format{Depth: 8})
	require.NoError(t, err)
	require.Len(t, buf, 10)
	assert.Equal(t, byte(0xFF), buf[0])
	assert.Equal(t, byte(0x00), buf[1])
}

func TestEncodeRejectsUnsupportedDepth(t *testing.T) {
	_, err := EncodePixel(red, Format{Depth: 12})
	assert.ErrorIs(t, err, lvconf.ErrUnsupportedColorDepth)

	_, err = Encode(image.NewNRGBA(image.Rect(0, 0, 0, 0)), Format{Depth: 4})
	assert.ErrorIs(t, err, lvconf.ErrUnsupportedColorDepth)
}

func TestQuantizeIsStable(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 0xff}
	for _, f := range []Format{{Depth: 1}, {Depth: 8}, {Depth: 16}, {Depth: 16, Swap16: true}, {Depth: 24}, {Depth: 32}} {
		q, err := Quantize(c, f)
		require.NoError(t, err, f.String())
		again, err := Quantize(q, f)
		require.NoError(t, err)
		assert.Equal(t, q, again, f.String())
	}

	q, err := Quantize(c, Format{Depth: 16})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 206, G: 101, B: 49, A: 0xff}, q)

	q, err = Quantize(red, Format{Depth: 16, Swap16: true})
	require.NoError(t, err)
	assert.Equal(t, red, q)
}

func TestBlitScalesAndQuantizes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 0xff}
	src.Set(1, 1, c)
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	require.NoError(t, blit(dst, src, Format{Depth: 16}))

	want, err := Quantize(c, Format{Depth: 16})
	require.NoError(t, err)
	assert.Equal(t, want, dst.NRGBAAt(3, 3))
	assert.Equal(t, want, dst.NRGBAAt(2, 2))
	assert.Equal(t, black, dst.NRGBAAt(0, 0))
}

func TestDevicePath(t *testing.T) {
	assert.Equal(t, "/dev/fb1", DevicePath(lvconf.DriverST7789))
	assert.Equal(t, "/dev/fb0", DevicePath(lvconf.DriverNone))
}

func TestSimulateMonochrome(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xff})
	src.Set(1, 0, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})

	out, err := Simulate(src, Format{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, white, out.NRGBAAt(0, 0))
	assert.Equal(t, black, out.NRGBAAt(1, 0))

	_, err = Simulate(src, Format{Depth: 3})
	assert.ErrorIs(t, err, lvconf.ErrUnsupportedColorDepth)
}
