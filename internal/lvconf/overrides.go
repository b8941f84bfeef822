package lvconf

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML form of a partial configuration. Absent keys keep
// the value of the base Config.
//
//	color:
//	  depth: 32
//	fonts:
//	  enabled: [montserrat_14, montserrat_20]
//	  default: montserrat_20
//	widgets:
//	  chart: true
//	display:
//	  driver: ili9341
type Overrides struct {
	OS       *string         `yaml:"os"`
	Log      *bool           `yaml:"log"`
	Asserts  map[string]*bool `yaml:"asserts"`
	Color    *ColorOverrides `yaml:"color"`
	Features map[string]*bool `yaml:"features"`
	Fonts    *FontOverrides  `yaml:"fonts"`
	Widgets  map[string]*bool `yaml:"widgets"`
	Display  *struct {
		Driver *string `yaml:"driver"`
	} `yaml:"display"`
}

type ColorOverrides struct {
	Depth             *int  `yaml:"depth"`
	Swap16            *bool `yaml:"swap16"`
	ScreenTransparent *bool `yaml:"screen_transparent"`
}

type FontOverrides struct {
	// Enabled replaces the full list of included fonts.
	Enabled []string `yaml:"enabled"`
	Default *string  `yaml:"default"`
}

// ApplyOverrides decodes YAML from r and applies it to a copy of base.
// Unknown keys and further documents after the first are rejected.
func ApplyOverrides(base Config, r io.Reader) (Config, error) {
	var ov Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ov); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("more than one YAML document")
		}
		return Config{}, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	return ov.Apply(base)
}

// Apply returns base with every set field of ov applied.
func (ov Overrides) Apply(base Config) (Config, error) {
	cfg := base
	bad := &ValidationError{}

	if ov.OS != nil {
		o, ok := ParseOS(*ov.OS)
		if !ok {
			bad.add("os", fmt.Errorf("%w: %q", ErrUnknownOS, *ov.OS))
		} else {
			cfg.OS = o
		}
	}
	if ov.Log != nil {
		cfg.Log = *ov.Log
	}

	asserts := map[string]*bool{
		"null":          &cfg.Asserts.Null,
		"malloc":        &cfg.Asserts.Malloc,
		"style":         &cfg.Asserts.Style,
		"mem_integrity": &cfg.Asserts.MemIntegrity,
		"obj":           &cfg.Asserts.Obj,
	}
	applyFlags(bad, "asserts", ov.Asserts, fieldLookup(asserts))

	if c := ov.Color; c != nil {
		if c.Depth != nil {
			cfg.Color.Depth = *c.Depth
		}
		if c.Swap16 != nil {
			cfg.Color.Swap16 = *c.Swap16
		}
		if c.ScreenTransparent != nil {
			cfg.Color.ScreenTransparent = *c.ScreenTransparent
		}
	}

	features := map[string]*bool{
		"draw_sw":      &cfg.Features.DrawSW,
		"gpu":          &cfg.Features.GPU,
		"disp_rot_max": &cfg.Features.DispRotMax,
		"perf_monitor": &cfg.Features.PerfMonitor,
		"mem_monitor":  &cfg.Features.MemMonitor,
	}
	applyFlags(bad, "features", ov.Features, fieldLookup(features))

	if f := ov.Fonts; f != nil {
		if f.Enabled != nil {
			cfg.Fonts = [NumFonts]bool{}
			for _, name := range f.Enabled {
				id := ParseFont(name)
				if id == NoFont {
					bad.add("fonts.enabled", fmt.Errorf("%w: %q", ErrUnknownFont, name))
					continue
				}
				cfg.Fonts[id] = true
			}
		}
		if f.Default != nil {
			id := ParseFont(*f.Default)
			if id == NoFont {
				bad.add("fonts.default", fmt.Errorf("%w: %q", ErrUnknownFont, *f.Default))
			} else {
				cfg.DefaultFont = id
			}
		}
	}

	applyFlags(bad, "widgets", ov.Widgets, func(key string) (*bool, bool) {
		w, ok := widgetByKey(key)
		if !ok {
			return nil, false
		}
		return &cfg.Widgets[w], true
	})

	if ov.Display != nil && ov.Display.Driver != nil {
		d, ok := ParseDriver(*ov.Display.Driver)
		if !ok {
			bad.add("display.driver", fmt.Errorf("%w: %q", ErrUnknownDriver, *ov.Display.Driver))
		} else {
			cfg.Display = d
		}
	}

	if err := bad.orNil(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fieldLookup(fields map[string]*bool) func(string) (*bool, bool) {
	return func(key string) (*bool, bool) {
		f, ok := fields[key]
		return f, ok
	}
}

// applyFlags sets each known key of in through lookup. Keys match case
// insensitively; a key with no value, or two spellings of one key, is an
// error. Keys are reported in sorted order so errors are stable.
func applyFlags(bad *ValidationError, section string, in map[string]*bool, lookup func(string) (*bool, bool)) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	seen := make(map[string]string, len(keys))
	for _, k := range keys {
		key := strings.ToLower(k)
		if prev, dup := seen[key]; dup {
			bad.add(section+"."+k, fmt.Errorf("%w: same key as %s", ErrConflictingDefinition, prev))
			continue
		}
		seen[key] = k
		field, ok := lookup(key)
		if !ok {
			bad.add(section+"."+k, fmt.Errorf("%w: unknown key", ErrMissingOption))
			continue
		}
		if in[k] == nil {
			bad.add(section+"."+k, fmt.Errorf("%w: no value", ErrMalformedValue))
			continue
		}
		*field = *in[k]
	}
}
