package lvconf

// Asserts selects the library's runtime integrity checks.
type Asserts struct {
	Null         bool // LV_USE_ASSERT_NULL
	Malloc       bool // LV_USE_ASSERT_MALLOC
	Style        bool // LV_USE_ASSERT_STYLE
	MemIntegrity bool // LV_USE_ASSERT_MEM_INTEGRITY
	Obj          bool // LV_USE_ASSERT_OBJ
}

// Color selects the pixel format of the draw buffers.
type Color struct {
	Depth             int  // LV_COLOR_DEPTH, bits per pixel
	Swap16            bool // LV_COLOR_16_SWAP
	ScreenTransparent bool // LV_COLOR_SCREEN_TRANSP
}

// Features are optional library subsystems.
type Features struct {
	DrawSW      bool // LV_USE_DRAW_SW
	GPU         bool // LV_USE_GPU
	DispRotMax  bool // LV_USE_DISP_ROT_MAX
	PerfMonitor bool // LV_USE_PERF_MONITOR
	MemMonitor  bool // LV_USE_MEM_MONITOR
}

// Config is the editable record a Set is built from. It holds only value
// types, so copies never alias.
type Config struct {
	OS       OS
	Log      bool
	Asserts  Asserts
	Color    Color
	Features Features

	Fonts       [NumFonts]bool
	DefaultFont FontID

	Widgets [NumWidgets]bool
	Display Driver
}

// Default returns the configuration of the ESP32 / ST7789 board build:
// 16-bit color, software rendering, Montserrat 14 and 28, and only the
// label, line, text area and canvas widgets.
func Default() Config {
	cfg := Config{
		OS:  OSNone,
		Log: false,
		Asserts: Asserts{
			Null:         true,
			Malloc:       true,
			Style:        true,
			MemIntegrity: true,
			Obj:          true,
		},
		Color: Color{
			Depth:             16,
			Swap16:            false,
			ScreenTransparent: false,
		},
		Features: Features{
			DrawSW: true,
		},
		DefaultFont: Montserrat(14),
		Display:     DriverST7789,
	}
	cfg.Fonts[Montserrat(14)] = true
	cfg.Fonts[Montserrat(28)] = true

	cfg.Widgets[WidgetLabel] = true
	cfg.Widgets[WidgetLine] = true
	cfg.Widgets[WidgetTextArea] = true
	cfg.Widgets[WidgetCanvas] = true
	return cfg
}

// EnableWidgets returns a copy of cfg with the given widgets switched on or off.
func (cfg Config) EnableWidgets(on bool, widgets ...Widget) Config {
	for _, w := range widgets {
		if w.valid() {
			cfg.Widgets[w] = on
		}
	}
	return cfg
}

// EnableFonts returns a copy of cfg with the given fonts switched on or off.
func (cfg Config) EnableFonts(on bool, fonts ...FontID) Config {
	for _, id := range fonts {
		if id.Valid() {
			cfg.Fonts[id] = on
		}
	}
	return cfg
}
