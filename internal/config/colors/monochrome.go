package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Text
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Open: "#D0D0D0",
		Done: "#FFFFFF",

		// Messages
		Success: "#FFFFFF",
		Warning: "#D0D0D0",
		Error:   "#FFFFFF",
	}
}
