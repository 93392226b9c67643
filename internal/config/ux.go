package config

// ValidThemes lists the accepted ui.theme values. "auto" picks from the
// terminal background.
var ValidThemes = []string{"light", "dark", "auto"}

// UIConfig holds presenter configuration.
type UIConfig struct {
	// Theme is light, dark or auto.
	Theme string `json:"theme" yaml:"theme"`

	// ShowMeta toggles the title/author/copyright block above each item.
	ShowMeta bool `json:"show_meta" yaml:"show_meta"`

	// WordWrap caps the rendered line width (0 = terminal width).
	WordWrap int `json:"word_wrap,omitempty" yaml:"word_wrap,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:    "auto",
		ShowMeta: true,
		WordWrap: 80,
	}
}
