// Package lvconf models the LVGL build configuration (lv_conf.h) as an
// immutable, validated set of named options.
//
// A Set is built once at startup with Build or BuildFrom and then only read.
// It holds no locks; any number of goroutines may read it concurrently.
package lvconf

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Set is the ConfigurationSet handed to the graphics library initializer.
type Set struct {
	cfg     Config
	options []Option
	index   map[string]int
	digest  string
}

// Build returns the built-in board configuration.
func Build() (*Set, error) {
	return BuildFrom(Default())
}

// BuildFrom validates cfg and freezes it into a Set.
func BuildFrom(cfg Config) (*Set, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	s := &Set{
		cfg:     cfg,
		options: make([]Option, len(table)),
		index:   make(map[string]int, len(table)),
	}
	for i, d := range table {
		s.options[i] = Option{Name: d.name, Category: d.category, Value: d.get(&s.cfg)}
		s.index[d.name] = i
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, s); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(buf.Bytes())
	s.digest = hex.EncodeToString(sum[:])
	return s, nil
}

// MustBuild is Build for program initialization; it panics on error.
func MustBuild() *Set {
	s, err := Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Get looks up an option by its lv_conf.h name.
func (s *Set) Get(name string) (Value, error) {
	i, ok := s.index[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrMissingOption, name)
	}
	return s.options[i].Value, nil
}

// Option is Get returning the whole entry, category included.
func (s *Set) Option(name string) (Option, error) {
	i, ok := s.index[name]
	if !ok {
		return Option{}, fmt.Errorf("%w: %s", ErrMissingOption, name)
	}
	return s.options[i], nil
}

// MustGet is Get for names known at compile time. An unknown name is a
// programming error and panics.
func (s *Set) MustGet(name string) Value {
	v, err := s.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Bool returns a boolean option. Asking for a non-boolean option is an error.
func (s *Set) Bool(name string) (bool, error) {
	v, err := s.Get(name)
	if err != nil {
		return false, err
	}
	if v.Kind != KindBool {
		return false, fmt.Errorf("%w: %s is %s, not bool", ErrInvalidConfiguration, name, v.Kind)
	}
	return v.Bool, nil
}

// Int returns an integer or symbol option as its numeric value.
func (s *Set) Int(name string) (int, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	if v.Kind != KindInt && v.Kind != KindSymbol {
		return 0, fmt.Errorf("%w: %s is %s, not int", ErrInvalidConfiguration, name, v.Kind)
	}
	return v.Int, nil
}

// Config returns a copy of the record the set was built from.
func (s *Set) Config() Config { return s.cfg }

// Len is the number of options.
func (s *Set) Len() int { return len(s.options) }

// Options returns all options in header order.
func (s *Set) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Names returns all option names, sorted.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.options))
	for _, o := range s.options {
		out = append(out, o.Name)
	}
	sort.Strings(out)
	return out
}

// Category returns the options of one category in header order.
func (s *Set) Category(cat Category) []Option {
	var out []Option
	for _, o := range s.options {
		if o.Category == cat {
			out = append(out, o)
		}
	}
	return out
}

// WidgetEnabled reports whether w is compiled in.
func (s *Set) WidgetEnabled(w Widget) bool {
	return w.valid() && s.cfg.Widgets[w]
}

// Widgets returns the enable flag of every widget category.
func (s *Set) Widgets() map[Widget]bool {
	out := make(map[Widget]bool, NumWidgets)
	for _, w := range AllWidgets() {
		out[w] = s.cfg.Widgets[w]
	}
	return out
}

// EnabledWidgets returns the enabled widget categories in declaration order.
func (s *Set) EnabledWidgets() []Widget {
	var out []Widget
	for _, w := range AllWidgets() {
		if s.cfg.Widgets[w] {
			out = append(out, w)
		}
	}
	return out
}

// EnabledFonts returns the included fonts in ascending size order.
func (s *Set) EnabledFonts() []FontID {
	var out []FontID
	for _, id := range AllFonts() {
		if s.cfg.Fonts[id] {
			out = append(out, id)
		}
	}
	return out
}

func (s *Set) DefaultFont() FontID { return s.cfg.DefaultFont }
func (s *Set) ColorDepth() int     { return s.cfg.Color.Depth }
func (s *Set) Display() Driver     { return s.cfg.Display }

// Fingerprint is the hex sha256 of the generated header. Sets with the same
// values have the same fingerprint.
func (s *Set) Fingerprint() string { return s.digest }
