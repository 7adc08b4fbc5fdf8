package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// view is the precomputed data handed to every layout template. Style
// tokens are resolved once here so the templates stay declarative.
type view struct {
	Data     model.ResumeData
	Settings model.ResumeSettings

	Accent      AccentClasses
	AccentToken string
	Font        string
	Size        string
	Surface     string
	Dark        bool

	// Dark-mode dependent neutrals shared across layouts.
	Muted   string // secondary text (dates, locations)
	Body    string // body copy
	Divider string // rules and decorative borders
	Panel   string // inset panel background
}

func newView(data model.ResumeData, settings model.ResumeSettings) view {
	dark := settings.DarkMode
	v := view{
		Data:        data,
		Settings:    settings,
		Accent:      Accent(settings.Color, dark),
		AccentToken: AccentToken(settings.Color),
		Font:        FontClass(settings.Font),
		Size:        SizeClass(settings.FontSize),
		Surface:     SurfaceClasses(dark),
		Dark:        dark,
	}
	if dark {
		v.Muted = "text-gray-400"
		v.Body = "text-gray-300"
		v.Divider = "border-gray-600"
		v.Panel = "bg-gray-800"
	} else {
		v.Muted = "text-gray-600"
		v.Body = "text-gray-700"
		v.Divider = "border-gray-300"
		v.Panel = "bg-gray-50"
	}
	return v
}

var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"dateRange":  DateRange,
	"linkLabel":  LinkLabel,
	"lower":      strings.ToLower,
	"ident": func(s string) string {
		return strings.Join(strings.Fields(s), "")
	},
	"initial": func(s string) string {
		if s == "" {
			return "Y"
		}
		return string([]rune(s)[0])
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

var templates = template.Must(
	template.New("resume").Funcs(funcs).ParseFS(templateFS, "templates/*.html"),
)

// layoutFor maps every template id to the layout file that implements it.
// Classic, minimal and creative are aliases of the modern layout.
var layoutFor = map[string]string{
	model.TemplateModern:     "modern",
	model.TemplateClassic:    "modern",
	model.TemplateMinimal:    "modern",
	model.TemplateCreative:   "modern",
	model.TemplateExecutive:  "executive",
	model.TemplateTech:       "tech",
	model.TemplateAcademic:   "academic",
	model.TemplateDesigner:   "designer",
	model.TemplateConsultant: "consultant",
	model.TemplateStartup:    "startup",
}

// Layout resolves a template id to its layout name; unknown ids default to
// modern so template selection stays a total function.
func Layout(templateID string) string {
	if name, ok := layoutFor[templateID]; ok {
		return name
	}
	return model.TemplateModern
}

// Render produces the presentational HTML fragment for the given data and
// settings. Same inputs always produce the same output; empty sections are
// omitted entirely, and missing optional fields omit their line.
func Render(data model.ResumeData, settings model.ResumeSettings) (string, error) {
	name := Layout(settings.Template)
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".html", newView(data, settings)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
