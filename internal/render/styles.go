package render

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

// AccentClasses is the (foreground, border) utility-class pair for the
// selected accent color. The class names are kept verbatim from the builder
// stylesheet so the print projection recognizes them.
type AccentClasses struct {
	Text   string
	Border string
}

func (a AccentClasses) Pair() string { return a.Text + " " + a.Border }

type accentPair struct {
	light AccentClasses
	dark  AccentClasses
}

var accents = map[string]accentPair{
	model.ColorBlue:   {light: AccentClasses{"text-blue-600", "border-blue-600"}, dark: AccentClasses{"text-blue-400", "border-blue-400"}},
	model.ColorGreen:  {light: AccentClasses{"text-green-600", "border-green-600"}, dark: AccentClasses{"text-green-400", "border-green-400"}},
	model.ColorPurple: {light: AccentClasses{"text-purple-600", "border-purple-600"}, dark: AccentClasses{"text-purple-400", "border-purple-400"}},
	model.ColorRed:    {light: AccentClasses{"text-red-600", "border-red-600"}, dark: AccentClasses{"text-red-400", "border-red-400"}},
	model.ColorGray:   {light: AccentClasses{"text-gray-600", "border-gray-600"}, dark: AccentClasses{"text-gray-400", "border-gray-400"}},
	model.ColorTeal:   {light: AccentClasses{"text-teal-600", "border-teal-600"}, dark: AccentClasses{"text-teal-400", "border-teal-400"}},
	model.ColorOrange: {light: AccentClasses{"text-orange-600", "border-orange-600"}, dark: AccentClasses{"text-orange-400", "border-orange-400"}},
	model.ColorPink:   {light: AccentClasses{"text-pink-600", "border-pink-600"}, dark: AccentClasses{"text-pink-400", "border-pink-400"}},
}

// Accent resolves the color enumeration to its class pair. Unrecognized
// values fall back to blue instead of failing.
func Accent(color string, dark bool) AccentClasses {
	p, ok := accents[color]
	if !ok {
		p = accents[model.ColorBlue]
	}
	if dark {
		return p.dark
	}
	return p.light
}

// AccentToken returns the validated color token itself, for templates that
// compose class names like from-<color>-600 directly.
func AccentToken(color string) string {
	if _, ok := accents[color]; ok {
		return color
	}
	return model.ColorBlue
}

var fontClasses = map[string]string{
	model.FontInter:        "font-sans",
	model.FontRoboto:       "font-sans",
	model.FontOpenSans:     "font-sans",
	model.FontMerriweather: "font-serif",
	model.FontPlayfair:     "font-serif",
	model.FontSourceCode:   "font-mono",
}

func FontClass(font string) string {
	if c, ok := fontClasses[font]; ok {
		return c
	}
	return fontClasses[model.FontInter]
}

var sizeClasses = map[string]string{
	model.SizeSmall:  "text-sm",
	model.SizeMedium: "text-base",
	model.SizeLarge:  "text-lg",
}

func SizeClass(size string) string {
	if c, ok := sizeClasses[size]; ok {
		return c
	}
	return sizeClasses[model.SizeMedium]
}

// SurfaceClasses is the document background/foreground pair toggled by dark
// mode. Dark mode changes appearance only, never which sections render.
func SurfaceClasses(dark bool) string {
	if dark {
		return "bg-gray-900 text-gray-100"
	}
	return "bg-white text-gray-900"
}

// FormatDate renders a "YYYY-MM" value as an abbreviated month plus year
// ("2021-03" -> "Mar 2021"). Empty input stays empty, and anything that
// does not parse is passed through untouched rather than rendered as an
// error.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// DateRange renders "start - end", with the current flag overriding the end
// date with the literal "Present".
func DateRange(start, end string, current bool) string {
	if current {
		return FormatDate(start) + " - Present"
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// LinkLabel derives a tidy display label (eTLD+1) from a stored URL, falling
// back to the hostname and finally the raw value.
func LinkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
