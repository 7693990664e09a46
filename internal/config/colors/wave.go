package colors

// Wave returns the kanagawa wave color scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary
		Accent: "#957FB8", // oniViolet

		// Text
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Status
		Open: "#FF9E3B", // roninYellow
		Done: "#98BB6C", // springGreen

		// Messages
		Success: "#98BB6C",
		Warning: "#FF9E3B",
		Error:   "#E82424", // samuraiRed
	}
}
