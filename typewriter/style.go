package typewriter

import "github.com/charmbracelet/lipgloss"

// Style controls the typewriter's rendering. The zero Style draws plain
// text.
type Style struct {
	Wall        lipgloss.Style
	Paper       lipgloss.Style
	PaperEdge   lipgloss.Style
	Text        lipgloss.Style
	Struck      lipgloss.Style // a deleted glyph on its own
	Overstrike  lipgloss.Style // a live glyph typed over a deleted one
	Composition lipgloss.Style
	Cursor      lipgloss.Style

	Platen      lipgloss.Style
	Guide       lipgloss.Style
	GuideActive lipgloss.Style

	Status  lipgloss.Style
	LampOn  lipgloss.Style
	LampOff lipgloss.Style

	Key       lipgloss.Style
	KeyAction lipgloss.Style
	KeyActive lipgloss.Style

	Sticker       lipgloss.Style
	StickerStruck lipgloss.Style
	StickerEdge   lipgloss.Style
	StickerDate   lipgloss.Style
}

func DefaultStyle() Style {
	wall := lipgloss.Color("#2b2520")
	paper := lipgloss.Color("#f4ecd8")
	ink := lipgloss.Color("#2a2a2a")
	note := lipgloss.Color("#fef3a0")

	paperBase := lipgloss.NewStyle().Background(paper).Foreground(ink)
	keyBase := lipgloss.NewStyle().Background(lipgloss.Color("#3b3b3b")).Foreground(lipgloss.Color("#e8e2d0"))
	noteBase := lipgloss.NewStyle().Background(note).Foreground(lipgloss.Color("#1c1917"))

	return Style{
		Wall:        lipgloss.NewStyle().Background(wall),
		Paper:       paperBase,
		PaperEdge:   lipgloss.NewStyle().Background(wall).Foreground(paper),
		Text:        paperBase,
		Struck:      paperBase.Foreground(lipgloss.Color("#9a8f7a")).Strikethrough(true),
		Overstrike:  paperBase.Foreground(lipgloss.Color("#4a3f35")).Underline(true),
		Composition: paperBase.Foreground(lipgloss.Color("#7a5c2e")).Underline(true),
		Cursor:      paperBase.Reverse(true),

		Platen:      lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("#111111")),
		Guide:       lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("#b08d57")),
		GuideActive: lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("#ffd27a")).Bold(true),

		Status:  lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("245")),
		LampOn:  lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("#7fd18b")),
		LampOff: lipgloss.NewStyle().Background(wall).Foreground(lipgloss.Color("#a05050")),

		Key:       keyBase,
		KeyAction: keyBase.Foreground(lipgloss.Color("#ffd27a")),
		KeyActive: keyBase.Reverse(true),

		Sticker:       noteBase,
		StickerStruck: noteBase.Foreground(lipgloss.Color("#8a7d3a")).Strikethrough(true),
		StickerEdge:   lipgloss.NewStyle().Foreground(note),
		StickerDate:   noteBase.Foreground(lipgloss.Color("#8a7d3a")).Italic(true),
	}
}
