package model

// Template variants. Classic, minimal and creative share the modern layout;
// the renderer resolves them (and any unknown value) to modern.
const (
	TemplateModern     = "modern"
	TemplateClassic    = "classic"
	TemplateMinimal    = "minimal"
	TemplateCreative   = "creative"
	TemplateExecutive  = "executive"
	TemplateTech       = "tech"
	TemplateAcademic   = "academic"
	TemplateDesigner   = "designer"
	TemplateConsultant = "consultant"
	TemplateStartup    = "startup"
)

// Templates lists every selectable variant in menu order.
var Templates = []string{
	TemplateModern,
	TemplateClassic,
	TemplateMinimal,
	TemplateCreative,
	TemplateExecutive,
	TemplateTech,
	TemplateAcademic,
	TemplateDesigner,
	TemplateConsultant,
	TemplateStartup,
}

const (
	FontInter        = "inter"
	FontRoboto       = "roboto"
	FontOpenSans     = "open-sans"
	FontMerriweather = "merriweather"
	FontPlayfair     = "playfair"
	FontSourceCode   = "source-code"
)

var Fonts = []string{FontInter, FontRoboto, FontOpenSans, FontMerriweather, FontPlayfair, FontSourceCode}

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

var FontSizes = []string{SizeSmall, SizeMedium, SizeLarge}

const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorPurple = "purple"
	ColorRed    = "red"
	ColorGray   = "gray"
	ColorTeal   = "teal"
	ColorOrange = "orange"
	ColorPink   = "pink"
)

var Colors = []string{ColorBlue, ColorGreen, ColorPurple, ColorRed, ColorGray, ColorTeal, ColorOrange, ColorPink}

// ResumeSettings is the presentation configuration, independent of content.
//
// SectionOrder is persisted and round-tripped but not consulted by the
// renderer: each template fixes its own section order.
type ResumeSettings struct {
	Template     string   `json:"template"`
	Font         string   `json:"font"`
	FontSize     string   `json:"fontSize"`
	Color        string   `json:"color"`
	DarkMode     bool     `json:"darkMode"`
	SectionOrder []string `json:"sectionOrder"`
}

func DefaultSettings() ResumeSettings {
	return ResumeSettings{
		Template: TemplateModern,
		Font:     FontInter,
		FontSize: SizeMedium,
		Color:    ColorBlue,
		DarkMode: false,
		SectionOrder: []string{
			"summary", "experience", "education", "projects",
			"skills", "certifications", "languages", "awards",
		},
	}
}
