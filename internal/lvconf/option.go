package lvconf

import (
	"strconv"
)

// Kind identifies the shape of an option value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindSymbol
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindSymbol:
		return "symbol"
	case KindResource:
		return "resource"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Category groups options the way lv_conf.h sections them.
type Category string

const (
	CategorySystem      Category = "system"
	CategoryDiagnostics Category = "diagnostics"
	CategoryColor       Category = "color"
	CategoryFonts       Category = "fonts"
	CategoryFeatures    Category = "features"
	CategoryWidgets     Category = "widgets"
	CategoryDisplay     Category = "display"
)

// Value is a single option value. The zero Value is a false boolean.
//
// Symbols carry both their C name and numeric code; resources carry the
// C identifier of the object they point to (e.g. lv_font_montserrat_14).
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int
	Symbol string
}

func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func IntValue(i int) Value   { return Value{Kind: KindInt, Int: i} }

func SymbolValue(name string, code int) Value {
	return Value{Kind: KindSymbol, Symbol: name, Int: code}
}

func ResourceValue(ident string) Value { return Value{Kind: KindResource, Symbol: ident} }

// Define renders the value as the right-hand side of a #define.
// Symbols are written as their numeric code so the header does not depend
// on the library's own enum macros being visible.
func (v Value) Define() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "1"
		}
		return "0"
	case KindInt, KindSymbol:
		return strconv.Itoa(v.Int)
	case KindResource:
		return "&" + v.Symbol
	default:
		return ""
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindSymbol:
		return v.Symbol
	default:
		return v.Define()
	}
}

// Option is one named entry of a Set.
type Option struct {
	Name     string
	Category Category
	Value    Value
}
