package lvconf

// Widget is a UI component category that can be compiled into the library.
type Widget int

const (
	WidgetLabel Widget = iota
	WidgetButton
	WidgetImage
	WidgetLine
	WidgetArc
	WidgetBar
	WidgetSlider
	WidgetSwitch
	WidgetLED
	WidgetMessageBox
	WidgetTextArea
	WidgetCanvas
	WidgetTable
	WidgetTabView
	WidgetTileView
	WidgetWindow
	WidgetSpinBox
	WidgetSpinner
	WidgetDropdown
	WidgetRoller
	WidgetChart
	WidgetCalendar
	WidgetColorPicker
	WidgetList
	WidgetMeter
	WidgetScale

	NumWidgets = int(WidgetScale) + 1
)

var widgetInfo = [NumWidgets]struct {
	key    string // override file key
	define string
}{
	WidgetLabel:       {"label", "LV_USE_LABEL"},
	WidgetButton:      {"button", "LV_USE_BTN"},
	WidgetImage:       {"image", "LV_USE_IMG"},
	WidgetLine:        {"line", "LV_USE_LINE"},
	WidgetArc:         {"arc", "LV_USE_ARC"},
	WidgetBar:         {"bar", "LV_USE_BAR"},
	WidgetSlider:      {"slider", "LV_USE_SLIDER"},
	WidgetSwitch:      {"switch", "LV_USE_SWITCH"},
	WidgetLED:         {"led", "LV_USE_LED"},
	WidgetMessageBox:  {"msgbox", "LV_USE_MSGBOX"},
	WidgetTextArea:    {"textarea", "LV_USE_TEXTAREA"},
	WidgetCanvas:      {"canvas", "LV_USE_CANVAS"},
	WidgetTable:       {"table", "LV_USE_TABLE"},
	WidgetTabView:     {"tabview", "LV_USE_TABVIEW"},
	WidgetTileView:    {"tileview", "LV_USE_TILEVIEW"},
	WidgetWindow:      {"win", "LV_USE_WIN"},
	WidgetSpinBox:     {"spinbox", "LV_USE_SPINBOX"},
	WidgetSpinner:     {"spinner", "LV_USE_SPINNER"},
	WidgetDropdown:    {"dropdown", "LV_USE_DROPDOWN"},
	WidgetRoller:      {"roller", "LV_USE_ROLLER"},
	WidgetChart:       {"chart", "LV_USE_CHART"},
	WidgetCalendar:    {"calendar", "LV_USE_CALENDAR"},
	WidgetColorPicker: {"cpicker", "LV_USE_CPICKER"},
	WidgetList:        {"list", "LV_USE_LIST"},
	WidgetMeter:       {"meter", "LV_USE_METER"},
	WidgetScale:       {"scale", "LV_USE_SCALE"},
}

// AllWidgets returns every widget category in declaration order.
func AllWidgets() []Widget {
	out := make([]Widget, NumWidgets)
	for i := range out {
		out[i] = Widget(i)
	}
	return out
}

// Key is the lower-case name used in override files.
func (w Widget) Key() string {
	if !w.valid() {
		return ""
	}
	return widgetInfo[w].key
}

// OptionName is the lv_conf.h macro enabling the widget.
func (w Widget) OptionName() string {
	if !w.valid() {
		return ""
	}
	return widgetInfo[w].define
}

func (w Widget) String() string { return w.Key() }

func (w Widget) valid() bool { return w >= 0 && int(w) < NumWidgets }

func widgetByKey(key string) (Widget, bool) {
	for i, info := range widgetInfo {
		if info.key == key {
			return Widget(i), true
		}
	}
	return 0, false
}
