// The bake subpackage rasterizes vector fonts into fixed-cell
// glyph atlases that can be loaded with the atlas subpackage.
//
// Glyphs are drawn in white, so they can be tinted freely when
// rendering.
package bake

import "fmt"
import "errors"
import "image"
import "unicode/utf8"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/token"

// Default number of cells per atlas row.
const DefaultColumns = 16

// Printable ASCII, from space to tilde.
const ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

var ErrInvalidOptions = errors.New("invalid bake options")

// Atlas layout options.
type Options struct {
	CellWidth  int
	CellHeight int
	Columns    int // cells per row. Zero means DefaultColumns
}

// Rasterizes each character of chars into its own cell, in order.
// Glyphs are centered horizontally and the text line (ascent plus
// descent) vertically. Glyphs larger than a cell are clipped.
// Characters that aren't valid UTF-8 leave their cell empty,
// and so do characters missing from the face.
func Bake(face font.Face, chars string, opts Options) (*image.NRGBA, error) {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrInvalidOptions, opts.CellWidth, opts.CellHeight)
	}
	columns := opts.Columns
	if columns == 0 { columns = DefaultColumns }
	if columns < 0 { return nil, fmt.Errorf("%w: %d columns", ErrInvalidOptions, columns) }

	alphabet := token.DecodeString(chars)
	if len(alphabet) == 0 { return nil, fmt.Errorf("%w: no characters", ErrInvalidOptions) }
	if len(alphabet) < columns { columns = len(alphabet) }
	rows := (len(alphabet) + columns - 1) / columns

	width, height := columns*opts.CellWidth, rows*opts.CellHeight
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()

	drawer := font.Drawer{Src: image.White, Face: face}
	for index, tok := range alphabet {
		codepoint := tok.Rune()
		if codepoint == utf8.RuneError && tok != token.FromRune(utf8.RuneError) { continue }
		advance, found := face.GlyphAdvance(codepoint)
		if !found { continue }

		cell := atlas.CellRect(index, width, height, opts.CellWidth, opts.CellHeight)
		drawer.Dst = img.SubImage(cell).(*image.NRGBA)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(cell.Min.X) + (fixed.I(opts.CellWidth)-advance)/2,
			Y: fixed.I(cell.Min.Y + (opts.CellHeight-lineHeight)/2 + ascent),
		}
		drawer.DrawString(string(codepoint))
	}
	return img, nil
}

// Returns the manifest describing an atlas baked with the given
// options and saved at imagePath.
func ManifestFor(imagePath, chars string, opts Options) atlas.Manifest {
	return atlas.Manifest{
		Image:      imagePath,
		Chars:      chars,
		CellWidth:  opts.CellWidth,
		CellHeight: opts.CellHeight,
	}
}
