package rendering

// Template names offered to callers
const (
	TemplateModern       = "modern"
	TemplateProfessional = "professional"
	TemplateCreative     = "creative"
)

// Style holds the visual parameters of a CV template
type Style struct {
	Name         string
	FontFamily   string
	HeaderColor  string
	SectionColor string
	AccentColor  string
	LineSpacing  float64
	MarginInches float64
}

var templateStyles = map[string]Style{
	TemplateModern: {
		Name:         TemplateModern,
		FontFamily:   "Helvetica, Arial, sans-serif",
		HeaderColor:  "#2c3e50",
		SectionColor: "#34495e",
		AccentColor:  "#3498db",
		LineSpacing:  1.15,
		MarginInches: 0.75,
	},
	TemplateProfessional: {
		Name:         TemplateProfessional,
		FontFamily:   "'Times New Roman', Times, serif",
		HeaderColor:  "#000000",
		SectionColor: "#333333",
		AccentColor:  "#666666",
		LineSpacing:  1.2,
		MarginInches: 1.0,
	},
	TemplateCreative: {
		Name:         TemplateCreative,
		FontFamily:   "Helvetica, Arial, sans-serif",
		HeaderColor:  "#1a237e",
		SectionColor: "#303f9f",
		AccentColor:  "#3f51b5",
		LineSpacing:  1.1,
		MarginInches: 0.5,
	},
}

// StyleByName returns the template style for the given name, falling back
// to the modern template for unknown names.
func StyleByName(name string) Style {
	if style, ok := templateStyles[name]; ok {
		return style
	}
	return templateStyles[TemplateModern]
}

// TemplateNames returns the available template names.
func TemplateNames() []string {
	return []string{TemplateModern, TemplateProfessional, TemplateCreative}
}
