package lvconf

import "strings"

// OS is the operating-system abstraction the library is built against (LV_USE_OS).
type OS int

const (
	OSNone       OS = 0
	OSPthread    OS = 1
	OSFreeRTOS   OS = 2
	OSCMSISRTOS2 OS = 3
	OSRTThread   OS = 4
	OSWindows    OS = 5
	OSCustom     OS = 255
)

var osSymbols = []struct {
	os   OS
	name string
}{
	{OSNone, "LV_OS_NONE"},
	{OSPthread, "LV_OS_PTHREAD"},
	{OSFreeRTOS, "LV_OS_FREERTOS"},
	{OSCMSISRTOS2, "LV_OS_CMSIS_RTOS2"},
	{OSRTThread, "LV_OS_RTTHREAD"},
	{OSWindows, "LV_OS_WINDOWS"},
	{OSCustom, "LV_OS_CUSTOM"},
}

// Symbol returns the LV_OS_* macro name, or "" for an unknown code.
func (o OS) Symbol() string {
	for _, s := range osSymbols {
		if s.os == o {
			return s.name
		}
	}
	return ""
}

func (o OS) String() string {
	return strings.ToLower(strings.TrimPrefix(o.Symbol(), "LV_OS_"))
}

// ParseOS accepts a symbol ("LV_OS_FREERTOS"), its short form ("freertos"),
// or a numeric code.
func ParseOS(s string) (OS, bool) {
	s = strings.TrimSpace(s)
	for _, sym := range osSymbols {
		if strings.EqualFold(s, sym.name) || strings.EqualFold(s, strings.TrimPrefix(sym.name, "LV_OS_")) {
			return sym.os, true
		}
	}
	if n, err := parseInt(s); err == nil {
		o := OS(n)
		if o.Symbol() != "" {
			return o, true
		}
	}
	return 0, false
}

// Driver is a display panel driver built into the library.
type Driver int

const (
	DriverNone Driver = iota - 1
	DriverST7735
	DriverST7789
	DriverST7796
	DriverILI9341

	numDrivers = int(DriverILI9341) + 1
)

var driverInfo = [numDrivers]struct {
	key    string
	define string
}{
	DriverST7735:  {"st7735", "LV_USE_ST7735"},
	DriverST7789:  {"st7789", "LV_USE_ST7789"},
	DriverST7796:  {"st7796", "LV_USE_ST7796"},
	DriverILI9341: {"ili9341", "LV_USE_ILI9341"},
}

// AllDrivers lists the known panel drivers.
func AllDrivers() []Driver {
	out := make([]Driver, numDrivers)
	for i := range out {
		out[i] = Driver(i)
	}
	return out
}

func (d Driver) valid() bool { return d >= 0 && int(d) < numDrivers }

func (d Driver) Key() string {
	if d == DriverNone {
		return "none"
	}
	if !d.valid() {
		return ""
	}
	return driverInfo[d].key
}

func (d Driver) OptionName() string {
	if !d.valid() {
		return ""
	}
	return driverInfo[d].define
}

func (d Driver) String() string { return d.Key() }

// ParseDriver accepts "st7789", "ST7789", "LV_USE_ST7789" or "none".
func ParseDriver(s string) (Driver, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "lv_use_")
	if s == "none" || s == "" {
		return DriverNone, true
	}
	for i, info := range driverInfo {
		if info.key == s {
			return Driver(i), true
		}
	}
	return DriverNone, false
}
