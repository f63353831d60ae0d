package vlist

// Style defines the visual appearance of list chrome. Row contents are drawn
// by the caller's render function; the style only covers what the list draws
// itself: background, borders, row stripes, and the scrollbar.
type Style struct {
	// List background
	BackgroundColor uint32
	BorderColor     uint32

	// Row stripes (used with WithRowBackground)
	RowBgColor    uint32
	RowBgAltColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32
	ScrollbarSize        float32

	// Minimum scrollbar thumb height in pixels
	ScrollbarMinThumb float32

	// Spacing after the list widget
	ItemSpacing float32
}

// DefaultStyle returns a neutral mid-gray style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(30, 30, 34, 255),
		BorderColor:     RGBA(70, 70, 78, 255),

		RowBgColor:    RGBA(36, 36, 41, 255),
		RowBgAltColor: RGBA(42, 42, 48, 255),

		ScrollbarBgColor:     RGBA(24, 24, 28, 255),
		ScrollbarGrabColor:   RGBA(92, 92, 102, 255),
		ScrollbarGrabHovered: RGBA(128, 128, 140, 255),
		ScrollbarSize:        10,
		ScrollbarMinThumb:    20,

		ItemSpacing: 4,
	}
}

// DarkStyle returns a high-contrast dark style.
func DarkStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(16, 16, 18, 255)
	s.BorderColor = RGBA(50, 50, 56, 255)
	s.RowBgColor = RGBA(22, 22, 25, 255)
	s.RowBgAltColor = RGBA(28, 28, 32, 255)
	s.ScrollbarBgColor = RGBA(12, 12, 14, 255)
	s.ScrollbarGrabColor = RGBA(70, 70, 80, 255)
	s.ScrollbarGrabHovered = RGBA(110, 110, 124, 255)
	return s
}
