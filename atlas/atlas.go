package atlas

import "image"

import "github.com/pggk/btxt/gfx"
import "github.com/pggk/btxt/token"

// A glyph atlas. Immutable after creation.
type Atlas struct {
	texture    gfx.Texture
	chars      string
	alphabet   []token.Token
	indices    map[token.Token]int
	cellWidth  int
	cellHeight int
}

// Creates an atlas for the given texture and character list. If a
// character appears more than once, only the first occurrence can
// ever be resolved. Non-positive cell sizes will panic.
func New(texture gfx.Texture, chars string, cellWidth, cellHeight int) *Atlas {
	if cellWidth <= 0 || cellHeight <= 0 { panic("atlas cell sizes must be positive") }
	alphabet := token.DecodeString(chars)
	indices := make(map[token.Token]int, len(alphabet))
	for i, tok := range alphabet {
		if _, seen := indices[tok]; seen { continue }
		indices[tok] = i
	}
	return &Atlas{
		texture:    texture,
		chars:      chars,
		alphabet:   alphabet,
		indices:    indices,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Returns the atlas texture.
func (self *Atlas) Texture() gfx.Texture { return self.texture }

// Returns the character list the atlas was created with.
func (self *Atlas) Chars() string { return self.chars }

// Returns the decoded character list. Must not be modified.
func (self *Atlas) Alphabet() []token.Token { return self.alphabet }

// Returns the size of each atlas cell.
func (self *Atlas) CellSize() (width, height int) {
	return self.cellWidth, self.cellHeight
}

// Returns the size of the atlas texture.
func (self *Atlas) Size() (width, height int) {
	return self.texture.Size()
}

// Returns the cell index of the given token, or -1 if the atlas
// doesn't contain it. Same results as the package level [IndexOf]()
// with the atlas alphabet, but without scanning.
func (self *Atlas) IndexOf(tok token.Token) int {
	index, found := self.indices[tok]
	if !found { return -1 }
	return index
}

// Returns the source rect of the cell at the given index.
// See [CellRect]().
func (self *Atlas) Rect(index int) image.Rectangle {
	width, height := self.texture.Size()
	return CellRect(index, width, height, self.cellWidth, self.cellHeight)
}

// Releases the atlas texture.
func (self *Atlas) Destroy(device gfx.Device) {
	device.Destroy(self.texture)
}

// Returns the first position of tok in the alphabet, or -1 if
// it's not present.
func IndexOf(tok token.Token, alphabet []token.Token) int {
	for i, candidate := range alphabet {
		if candidate == tok { return i }
	}
	return -1
}

// Returns the rect of the cell at the given index within an atlas
// of the given size. Cells are laid out in rows of atlasWidth/cellWidth
// cells. The result is not checked against atlasHeight: indices beyond
// the last row produce rects outside the atlas.
func CellRect(index, atlasWidth, atlasHeight, cellWidth, cellHeight int) image.Rectangle {
	cellsPerRow := atlasWidth / cellWidth
	if cellsPerRow < 1 { cellsPerRow = 1 }
	row := index / cellsPerRow
	col := index % cellsPerRow
	x, y := col*cellWidth, row*cellHeight
	return image.Rect(x, y, x+cellWidth, y+cellHeight)
}
