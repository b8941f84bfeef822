package lvconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	src := `
os: freertos
color:
  depth: 32
  screen_transparent: true
asserts:
  style: false
features:
  perf_monitor: true
fonts:
  enabled: [montserrat_12, lv_font_montserrat_20]
  default: montserrat_20
widgets:
  chart: true
  canvas: false
display:
  driver: st7796
`
	cfg, err := ApplyOverrides(Default(), strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, OSFreeRTOS, cfg.OS)
	assert.Equal(t, 32, cfg.Color.Depth)
	assert.True(t, cfg.Color.ScreenTransparent)
	assert.False(t, cfg.Asserts.Style)
	assert.True(t, cfg.Asserts.Null)
	assert.True(t, cfg.Features.PerfMonitor)
	assert.True(t, cfg.Features.DrawSW)
	assert.Equal(t, DriverST7796, cfg.Display)

	set, err := BuildFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, []FontID{Montserrat(12), Montserrat(20)}, set.EnabledFonts())
	assert.Equal(t, Montserrat(20), set.DefaultFont())
	assert.True(t, set.WidgetEnabled(WidgetChart))
	assert.False(t, set.WidgetEnabled(WidgetCanvas))
	assert.True(t, set.WidgetEnabled(WidgetLabel))
}

func TestApplyOverridesEmpty(t *testing.T) {
	cfg, err := ApplyOverrides(Default(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyOverridesRejectsUnknownKeys(t *testing.T) {
	cases := map[string]string{
		"top level":  "colour:\n  depth: 8\n",
		"widget":     "widgets:\n  teleporter: true\n",
		"assert":     "asserts:\n  everything: true\n",
		"color key":  "color:\n  bits: 8\n",
		"bad font":   "fonts:\n  enabled: [helvetica_12]\n",
		"bad driver": "display:\n  driver: crt\n",
		"bad os":     "os: plan9\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ApplyOverrides(Default(), strings.NewReader(src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestOverridesCanBreakCrossOptionRules(t *testing.T) {
	// Overrides are applied blindly; BuildFrom is where the rules bite.
	cfg, err := ApplyOverrides(Default(), strings.NewReader("fonts:\n  enabled: [montserrat_28]\n"))
	require.NoError(t, err)

	_, err = BuildFrom(cfg)
	assert.ErrorIs(t, err, ErrFontDisabled)
}

func TestApplyOverridesRejectsExtraDocuments(t *testing.T) {
	src := "widgets:\n  label: true\n---\nwidgets:\n  teleporter: true\ncolor:\n  depth: 99\n"
	_, err := ApplyOverrides(Default(), strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestApplyOverridesRejectsAmbiguousFlags(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"null widget":      {"widgets:\n  label:\n", ErrMalformedValue},
		"null feature":     {"features:\n  gpu: ~\n", ErrMalformedValue},
		"case collision":   {"widgets:\n  Label: false\n  label: true\n", ErrConflictingDefinition},
		"assert collision": {"asserts:\n  OBJ: true\n  obj: false\n", ErrConflictingDefinition},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ApplyOverrides(Default(), strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	cfg, err := ApplyOverrides(Default(), strings.NewReader("widgets:\n  Chart: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Widgets[WidgetChart])
}
