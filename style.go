package btxt

import "image/color"

import "github.com/pggk/btxt/gfx"

const (
	DefaultHorzOffset = 57
	DefaultVertOffset = 70
)

// Drawing parameters. They are passed explicitly to every draw
// operation; nothing is stored in the [Renderer].
type Style struct {
	// Size of each glyph when drawn, in pixels. Atlas cells
	// are scaled to Size x Size.
	Size int

	// Percentage of Size that glyphs overlap horizontally. Higher
	// values pack glyphs tighter. Most fixed-width atlases have
	// lots of padding inside each cell, hence the default of 57.
	HorzOffset int

	// Distance between lines, as a percentage of Size.
	VertOffset int

	// Color the glyphs are tinted with. The zero value is
	// treated as white.
	Color color.RGBA
}

// Returns a style for the given size with the default offsets.
func DefaultStyle(size int) Style {
	return Style{
		Size:       size,
		HorzOffset: DefaultHorzOffset,
		VertOffset: DefaultVertOffset,
		Color:      gfx.White,
	}
}

// Returns the horizontal pen advance after each character.
func (self Style) Advance() int { return Advance(self.Size, self.HorzOffset) }

// Returns the vertical distance between consecutive lines.
func (self Style) LineAdvance() int { return LineAdvance(self.Size, self.VertOffset) }

// Same as [Lines]() with the style size and horizontal offset.
func (self Style) Lines(text string, maxWidth int) []string {
	return Lines(text, self.Size, self.HorzOffset, maxWidth)
}

func (self Style) tint() color.RGBA {
	if self.Color == (color.RGBA{}) { return gfx.White }
	return self.Color
}
