package lvconf

import "fmt"

// SupportedColorDepths are the LV_COLOR_DEPTH values the library accepts.
var SupportedColorDepths = []int{1, 8, 16, 24, 32}

func supportedDepth(depth int) bool {
	for _, d := range SupportedColorDepths {
		if d == depth {
			return true
		}
	}
	return false
}

// Validate checks the cross-option constraints of cfg and reports all
// violations together as a *ValidationError.
func Validate(cfg Config) error {
	v := &ValidationError{}

	if cfg.OS.Symbol() == "" {
		v.add("LV_USE_OS", fmt.Errorf("%w: %d", ErrUnknownOS, int(cfg.OS)))
	}

	if !supportedDepth(cfg.Color.Depth) {
		v.add("LV_COLOR_DEPTH", fmt.Errorf("%w: %d (want one of %v)", ErrUnsupportedColorDepth, cfg.Color.Depth, SupportedColorDepths))
	} else if cfg.Color.Swap16 && cfg.Color.Depth != 16 {
		v.add("LV_COLOR_16_SWAP", fmt.Errorf("%w: depth is %d", ErrSwapRequires16Bit, cfg.Color.Depth))
	}

	if !cfg.Features.DrawSW && !cfg.Features.GPU {
		v.add("LV_USE_DRAW_SW", ErrNoRenderBackend)
	}

	switch {
	case !cfg.DefaultFont.Valid():
		v.add("LV_FONT_DEFAULT", fmt.Errorf("%w: %s", ErrUnknownFont, cfg.DefaultFont))
	case !cfg.Fonts[cfg.DefaultFont]:
		v.add("LV_FONT_DEFAULT", fmt.Errorf("%w: %s requires %s=1", ErrFontDisabled, cfg.DefaultFont.Symbol(), cfg.DefaultFont.OptionName()))
	}

	if cfg.Display != DriverNone && !cfg.Display.valid() {
		v.add("display", fmt.Errorf("%w: %d", ErrUnknownDriver, int(cfg.Display)))
	}

	return v.orNil()
}
