package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Open: "#FFD700",
		Done: "#5FD75F",

		// Messages
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
