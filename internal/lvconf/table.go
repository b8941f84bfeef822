package lvconf

import (
	"fmt"
	"strconv"
	"strings"
)

// descriptor binds one lv_conf.h macro to a field of Config.
type descriptor struct {
	name     string
	category Category
	kind     Kind
	get      func(*Config) Value
	set      func(*Config, string) error
}

// table lists every option in header order. Built once; never modified.
var table, tableIndex = buildTable()

func boolField(name string, cat Category, field func(*Config) *bool) descriptor {
	return descriptor{
		name:     name,
		category: cat,
		kind:     KindBool,
		get:      func(c *Config) Value { return BoolValue(*field(c)) },
		set: func(c *Config, raw string) error {
			b, err := parseBool(raw)
			if err != nil {
				return err
			}
			*field(c) = b
			return nil
		},
	}
}

func buildTable() ([]descriptor, map[string]int) {
	var t []descriptor

	t = append(t,
		descriptor{
			name:     "LV_USE_OS",
			category: CategorySystem,
			kind:     KindSymbol,
			get:      func(c *Config) Value { return SymbolValue(c.OS.Symbol(), int(c.OS)) },
			set: func(c *Config, raw string) error {
				o, ok := ParseOS(raw)
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownOS, raw)
				}
				c.OS = o
				return nil
			},
		},
		boolField("LV_USE_LOG", CategoryDiagnostics, func(c *Config) *bool { return &c.Log }),
		boolField("LV_USE_ASSERT_NULL", CategoryDiagnostics, func(c *Config) *bool { return &c.Asserts.Null }),
		boolField("LV_USE_ASSERT_MALLOC", CategoryDiagnostics, func(c *Config) *bool { return &c.Asserts.Malloc }),
		boolField("LV_USE_ASSERT_STYLE", CategoryDiagnostics, func(c *Config) *bool { return &c.Asserts.Style }),
		boolField("LV_USE_ASSERT_MEM_INTEGRITY", CategoryDiagnostics, func(c *Config) *bool { return &c.Asserts.MemIntegrity }),
		boolField("LV_USE_ASSERT_OBJ", CategoryDiagnostics, func(c *Config) *bool { return &c.Asserts.Obj }),
		descriptor{
			name:     "LV_COLOR_DEPTH",
			category: CategoryColor,
			kind:     KindInt,
			get:      func(c *Config) Value { return IntValue(c.Color.Depth) },
			set: func(c *Config, raw string) error {
				n, err := parseInt(raw)
				if err != nil {
					return err
				}
				c.Color.Depth = n
				return nil
			},
		},
		boolField("LV_COLOR_16_SWAP", CategoryColor, func(c *Config) *bool { return &c.Color.Swap16 }),
		boolField("LV_COLOR_SCREEN_TRANSP", CategoryColor, func(c *Config) *bool { return &c.Color.ScreenTransparent }),
		boolField("LV_USE_DRAW_SW", CategoryColor, func(c *Config) *bool { return &c.Features.DrawSW }),
	)

	for _, id := range AllFonts() {
		t = append(t, boolField(id.OptionName(), CategoryFonts, func(c *Config) *bool { return &c.Fonts[id] }))
	}
	t = append(t, descriptor{
		name:     "LV_FONT_DEFAULT",
		category: CategoryFonts,
		kind:     KindResource,
		get:      func(c *Config) Value { return ResourceValue(c.DefaultFont.Symbol()) },
		set: func(c *Config, raw string) error {
			id := ParseFont(raw)
			if id == NoFont {
				return fmt.Errorf("%w: %s", ErrUnknownFont, raw)
			}
			c.DefaultFont = id
			return nil
		},
	})

	t = append(t,
		boolField("LV_USE_DISP_ROT_MAX", CategoryFeatures, func(c *Config) *bool { return &c.Features.DispRotMax }),
		boolField("LV_USE_GPU", CategoryFeatures, func(c *Config) *bool { return &c.Features.GPU }),
		boolField("LV_USE_PERF_MONITOR", CategoryFeatures, func(c *Config) *bool { return &c.Features.PerfMonitor }),
		boolField("LV_USE_MEM_MONITOR", CategoryFeatures, func(c *Config) *bool { return &c.Features.MemMonitor }),
	)

	for _, w := range AllWidgets() {
		t = append(t, boolField(w.OptionName(), CategoryWidgets, func(c *Config) *bool { return &c.Widgets[w] }))
	}

	for _, d := range AllDrivers() {
		t = append(t, descriptor{
			name:     d.OptionName(),
			category: CategoryDisplay,
			kind:     KindBool,
			get:      func(c *Config) Value { return BoolValue(c.Display == d) },
			set: func(c *Config, raw string) error {
				on, err := parseBool(raw)
				if err != nil {
					return err
				}
				switch {
				case on && c.Display != DriverNone && c.Display != d:
					return fmt.Errorf("%w: %s and %s both enabled", ErrMultipleDrivers, c.Display.OptionName(), d.OptionName())
				case on:
					c.Display = d
				case c.Display == d:
					c.Display = DriverNone
				}
				return nil
			},
		})
	}

	index := make(map[string]int, len(t))
	for i, d := range t {
		if _, dup := index[d.name]; dup {
			panic("lvconf: duplicate option " + d.name)
		}
		index[d.name] = i
	}
	return t, index
}

func lookupDescriptor(name string) (descriptor, bool) {
	i, ok := tableIndex[name]
	if !ok {
		return descriptor{}, false
	}
	return table[i], true
}

// parseBool accepts the C spellings 0 and 1 (and true/false for hand-written files).
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected 0 or 1, got %q", raw)
}

func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")
	n, err := strconv.ParseInt(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", raw)
	}
	return int(n), nil
}
