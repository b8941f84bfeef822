package lvconf

import (
	"strconv"
	"strings"
)

// FontID identifies one of the built-in Montserrat font resources.
type FontID int

const (
	minFontSize  = 8
	maxFontSize  = 48
	fontSizeStep = 2

	// NumFonts is the number of built-in Montserrat sizes (8, 10, ... 48).
	NumFonts = (maxFontSize-minFontSize)/fontSizeStep + 1

	// NoFont is the FontID of an unknown font name.
	NoFont FontID = -1
)

// Montserrat returns the FontID of the built-in Montserrat face of the given
// pixel size, or NoFont if the library does not ship that size.
func Montserrat(size int) FontID {
	if size < minFontSize || size > maxFontSize || (size-minFontSize)%fontSizeStep != 0 {
		return NoFont
	}
	return FontID((size - minFontSize) / fontSizeStep)
}

// AllFonts returns every known font in ascending size order.
func AllFonts() []FontID {
	out := make([]FontID, NumFonts)
	for i := range out {
		out[i] = FontID(i)
	}
	return out
}

// Size is the pixel size of the font.
func (id FontID) Size() int {
	if !id.Valid() {
		return 0
	}
	return minFontSize + int(id)*fontSizeStep
}

func (id FontID) Valid() bool { return id >= 0 && int(id) < NumFonts }

// Name is the short identifier, e.g. "montserrat_14".
func (id FontID) Name() string {
	if !id.Valid() {
		return ""
	}
	return "montserrat_" + strconv.Itoa(id.Size())
}

// Symbol is the C object name of the font, e.g. "lv_font_montserrat_14".
func (id FontID) Symbol() string {
	if !id.Valid() {
		return ""
	}
	return "lv_font_" + id.Name()
}

// OptionName is the lv_conf.h macro including the font, e.g. LV_FONT_MONTSERRAT_14.
func (id FontID) OptionName() string {
	if !id.Valid() {
		return ""
	}
	return "LV_FONT_MONTSERRAT_" + strconv.Itoa(id.Size())
}

func (id FontID) String() string {
	if !id.Valid() {
		return "font(" + strconv.Itoa(int(id)) + ")"
	}
	return id.Name()
}

// ParseFont accepts "montserrat_14", "lv_font_montserrat_14" and
// "&lv_font_montserrat_14".
func ParseFont(s string) FontID {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "&")
	s = strings.TrimPrefix(s, "lv_font_")
	rest, ok := strings.CutPrefix(s, "montserrat_")
	if !ok {
		return NoFont
	}
	size, err := strconv.Atoi(rest)
	if err != nil {
		return NoFont
	}
	return Montserrat(size)
}
