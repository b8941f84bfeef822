package lvconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontIDs(t *testing.T) {
	assert.Equal(t, 21, NumFonts)
	assert.Equal(t, FontID(0), Montserrat(8))
	assert.Equal(t, FontID(20), Montserrat(48))
	assert.Equal(t, NoFont, Montserrat(13))
	assert.Equal(t, NoFont, Montserrat(50))

	id := Montserrat(14)
	assert.Equal(t, 14, id.Size())
	assert.Equal(t, "montserrat_14", id.Name())
	assert.Equal(t, "lv_font_montserrat_14", id.Symbol())
	assert.Equal(t, "LV_FONT_MONTSERRAT_14", id.OptionName())

	for _, s := range []string{"montserrat_14", "lv_font_montserrat_14", "&lv_font_montserrat_14", " montserrat_14 "} {
		assert.Equal(t, id, ParseFont(s), s)
	}
	for _, s := range []string{"", "montserrat_", "montserrat_x", "unscii_8", "montserrat_15"} {
		assert.Equal(t, NoFont, ParseFont(s), s)
	}
	assert.Equal(t, "", NoFont.Symbol())
}

func TestWidgetKeys(t *testing.T) {
	for _, w := range AllWidgets() {
		got, ok := widgetByKey(w.Key())
		assert.True(t, ok, w.Key())
		assert.Equal(t, w, got)
	}
	assert.Equal(t, "LV_USE_CPICKER", WidgetColorPicker.OptionName())
	assert.Equal(t, "", Widget(99).OptionName())
}

func TestParseOSAndDriver(t *testing.T) {
	o, ok := ParseOS("LV_OS_PTHREAD")
	assert.True(t, ok)
	assert.Equal(t, OSPthread, o)
	o, ok = ParseOS("255")
	assert.True(t, ok)
	assert.Equal(t, OSCustom, o)
	assert.Equal(t, "custom", o.String())

	d, ok := ParseDriver("LV_USE_ST7789")
	assert.True(t, ok)
	assert.Equal(t, DriverST7789, d)
	d, ok = ParseDriver("none")
	assert.True(t, ok)
	assert.Equal(t, DriverNone, d)
	_, ok = ParseDriver("ssd1306")
	assert.False(t, ok)
}

func TestValueDefine(t *testing.T) {
	assert.Equal(t, "1", BoolValue(true).Define())
	assert.Equal(t, "0", BoolValue(false).Define())
	assert.Equal(t, "16", IntValue(16).Define())
	assert.Equal(t, "2", SymbolValue("LV_OS_FREERTOS", 2).Define())
	assert.Equal(t, "LV_OS_FREERTOS", SymbolValue("LV_OS_FREERTOS", 2).String())
	assert.Equal(t, "&lv_font_montserrat_28", ResourceValue("lv_font_montserrat_28").Define())
}
