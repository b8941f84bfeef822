package lvconf

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeader(t *testing.T) {
	set := MustBuild()

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, set))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "/*"))
	assert.Contains(t, out, "#ifndef LV_CONF_H\n#define LV_CONF_H\n")
	assert.Contains(t, out, "#define LV_USE_OS 0\n")
	assert.Contains(t, out, "#define LV_COLOR_DEPTH 16\n")
	assert.Contains(t, out, "#define LV_FONT_DEFAULT &lv_font_montserrat_14\n")
	assert.Contains(t, out, "#define LV_USE_ST7789 1\n")
	assert.Contains(t, out, "/* widgets */\n")
	assert.True(t, strings.HasSuffix(out, "#endif /* LV_CONF_H */\n"))

	// Each option defined exactly once.
	for _, name := range set.Names() {
		assert.Equal(t, 1, strings.Count(out, "#define "+name+" "), name)
	}
}

func TestParseBoardHeader(t *testing.T) {
	f, err := os.Open("testdata/esp32_st7789.h")
	require.NoError(t, err)
	defer f.Close()

	res, err := ParseHeader(f)
	require.NoError(t, err)

	want := MustBuild()
	assert.Equal(t, want.Config(), res.Set.Config())
	assert.Equal(t, want.Fingerprint(), res.Set.Fingerprint())
	assert.ElementsMatch(t,
		[]string{"LV_USE_LOG", "LV_USE_MSGBOX", "LV_USE_SPINBOX", "LV_USE_SPINNER", "LV_USE_TILEVIEW", "LV_USE_WIN"},
		res.Duplicates)
}

func TestHeaderRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.OS = OSFreeRTOS
	cfg.Color.Depth = 32
	cfg.Color.ScreenTransparent = true
	cfg = cfg.EnableFonts(true, Montserrat(20))
	cfg.DefaultFont = Montserrat(20)
	cfg = cfg.EnableWidgets(true, WidgetChart, WidgetButton)
	cfg.Display = DriverILI9341

	set, err := BuildFrom(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, set))
	res, err := ParseHeader(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(set.Config(), res.Set.Config()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.Duplicates)
}

func TestParseHeaderConflictingDuplicate(t *testing.T) {
	src := `
#define LV_USE_WIN 0
#define LV_USE_WIN 1
`
	_, err := ParseHeader(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingDefinition)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseHeaderEquivalentDuplicates(t *testing.T) {
	cases := map[string]string{
		"parenthesized": "#define LV_USE_WIN 0\n#define LV_USE_WIN (0)\n",
		"bool spelling": "#define LV_USE_LABEL 1\n#define LV_USE_LABEL true\n",
		"hex depth":     "#define LV_COLOR_DEPTH 16\n#define LV_COLOR_DEPTH 0x10\n",
		"os symbol":     "#define LV_USE_OS LV_OS_NONE\n#define LV_USE_OS 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ParseHeader(strings.NewReader(src))
			require.NoError(t, err)
			assert.Len(t, res.Duplicates, 1)
			assert.Equal(t, MustBuild().Fingerprint(), res.Set.Fingerprint())
		})
	}

	_, err := ParseHeader(strings.NewReader("#define LV_COLOR_DEPTH 16\n#define LV_COLOR_DEPTH 0x20\n"))
	assert.ErrorIs(t, err, ErrConflictingDefinition)
}

func TestParseHeaderRejects(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"unknown option":  {"#define LV_USE_TELEPORTER 1\n", ErrMissingOption},
		"bad bool":        {"#define LV_USE_LABEL yes\n", ErrMalformedValue},
		"bad depth":       {"#define LV_COLOR_DEPTH 12\n", ErrUnsupportedColorDepth},
		"unknown font":    {"#define LV_FONT_DEFAULT &lv_font_comic_sans_12\n", ErrUnknownFont},
		"disabled font":   {"#define LV_FONT_DEFAULT &lv_font_montserrat_20\n", ErrFontDisabled},
		"two drivers":     {"#define LV_USE_ST7789 1\n#define LV_USE_ILI9341 1\n", ErrMultipleDrivers},
		"conditional":     {"#if LV_USE_LOG\n#define LV_USE_LABEL 1\n#endif\n", ErrMalformedValue},
		"missing value":   {"#define LV_USE_LABEL\n", ErrMalformedValue},
		"stray text":      {"int x = 1;\n", ErrMalformedValue},
		"unknown os":      {"#define LV_USE_OS 77\n", ErrUnknownOS},
		"swap on 32 bits": {"#define LV_COLOR_DEPTH 32\n#define LV_COLOR_16_SWAP 1\n", ErrSwapRequires16Bit},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHeader(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseHeaderDriverSelection(t *testing.T) {
	res, err := ParseHeader(strings.NewReader("#define LV_USE_ILI9341 1\n"))
	require.NoError(t, err)
	assert.Equal(t, DriverILI9341, res.Set.Display())

	res, err = ParseHeader(strings.NewReader("#define LV_USE_ST7789 0\n"))
	require.NoError(t, err)
	assert.Equal(t, DriverNone, res.Set.Display())

	res, err = ParseHeader(strings.NewReader("#define LV_USE_LABEL 1\n"))
	require.NoError(t, err)
	assert.Equal(t, DriverST7789, res.Set.Display())
}

func TestParseHeaderSymbolsAndComments(t *testing.T) {
	src := `/* block
   comment // with slashes */
#define LV_USE_OS LV_OS_FREERTOS // trailing
#define LV_COLOR_DEPTH (32) /* inline */
`
	res, err := ParseHeader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, OSFreeRTOS, res.Set.Config().OS)
	assert.Equal(t, 32, res.Set.ColorDepth())
}

func TestStripComments(t *testing.T) {
	line, in := stripComments("#define A 1 /* x", false)
	assert.Equal(t, "#define A 1  ", line)
	assert.True(t, in)

	line, in = stripComments("still */ #define B 2", true)
	assert.Equal(t, " #define B 2", line)
	assert.False(t, in)

	line, in = stripComments("#define C 3 // c /* d", false)
	assert.Equal(t, "#define C 3 ", line)
	assert.False(t, in)
}
