package btxt

import "image"
import "image/color"

import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/gfx"
import "github.com/pggk/btxt/token"

// Draws text with a glyph [atlas.Atlas] on a [gfx.Device].
//
// Renderers hold no drawing state besides the device and the atlas:
// sizes, offsets and colors are given on each call through a [Style],
// and caching is controlled through optional [Combined] values.
type Renderer struct {
	device gfx.Device
	atlas  *atlas.Atlas
}

// Creates a renderer. Both arguments are required.
func NewRenderer(device gfx.Device, fontAtlas *atlas.Atlas) *Renderer {
	if device == nil { panic("NewRenderer(nil, ...)") }
	if fontAtlas == nil { panic("NewRenderer(..., nil)") }
	return &Renderer{device: device, atlas: fontAtlas}
}

// Returns the renderer's device.
func (self *Renderer) Device() gfx.Device { return self.device }

// Returns the renderer's atlas.
func (self *Renderer) Atlas() *atlas.Atlas { return self.atlas }

// Draws a single line of text with its top-left corner at (x, y).
// Line breaks are not interpreted, see [Renderer.DrawMultiline]()
// for that. Characters missing from the atlas are skipped without
// advancing the pen position.
//
// The cache is optional. When given, glyphs are composited into
// it and the cache is marked as finished at the end, so later calls
// only copy the cached result to the output.
func (self *Renderer) Draw(text string, x, y int, style Style, cache *Combined) {
	self.DrawTokens(token.DecodeString(text), x, y, style, cache)
}

// Same as [Renderer.Draw](), but for already decoded text.
func (self *Renderer) DrawTokens(tokens []token.Token, x, y int, style Style, cache *Combined) {
	self.drawTokens(tokens, x, y, style, cache, true)
}

// Draws the text wrapped inside the given area. If lines is nil,
// the text is split with [Lines]() using the area width. Otherwise,
// the given lines are drawn as they are and the text is ignored.
//
// With a finished cache, only the area region of the cache is copied
// to the output.
func (self *Renderer) DrawMultiline(text string, area image.Rectangle, style Style, cache *Combined, lines []string) {
	if cache != nil && cache.finished {
		cache.blit(self.device, area)
		return
	}

	if lines == nil { lines = style.Lines(text, area.Dx()) }
	y := area.Min.Y
	lineAdvance := style.LineAdvance()
	for _, line := range lines {
		if cache != nil { cache.finished = false }
		self.Draw(line, area.Min.X, y, style, cache)
		y += lineAdvance
	}
}

// ---- helpers ----

// Draw path shared by whole-string draws and typewriter reveals. Only
// the former mark the cache as finished.
func (self *Renderer) drawTokens(tokens []token.Token, x, y int, style Style, cache *Combined, finish bool) {
	if cache != nil && !cache.acquire(self.device) { cache = nil }
	if cache != nil && cache.finished {
		cache.blit(self.device, image.Rectangle{})
		return
	}

	advance := style.Advance()
	tint := style.tint()
	for _, tok := range tokens {
		if tok == token.Space {
			x += advance
			if cache != nil { cache.blit(self.device, image.Rectangle{}) }
			continue
		}

		index := self.atlas.IndexOf(tok)
		if index == -1 {
			if cache != nil { cache.blit(self.device, image.Rectangle{}) }
			continue
		}

		src := self.atlas.Rect(index)
		dst := image.Rect(x, y, x+style.Size, y+style.Size)
		x += advance
		if cache != nil {
			self.composite(cache, src, dst, tint)
		} else {
			self.drawDirect(src, dst, tint)
		}
	}

	if cache != nil && finish { cache.finished = true }
}

// Tints the glyph on a scratch target, merges it into the cache
// and copies the cache to the output.
func (self *Renderer) composite(cache *Combined, src, dst image.Rectangle, tint color.RGBA) {
	width, height := self.device.Output().Size()
	scratch, err := self.device.NewTarget(width, height)
	if err != nil {
		Logger().Warn("btxt: scratch target allocation failed, compositing untinted", "error", err)
		self.device.Copy(cache.target, self.atlas.Texture(), src, dst)
		cache.blit(self.device, image.Rectangle{})
		return
	}

	self.device.Clear(scratch, gfx.Transparent)
	self.device.SetTint(scratch, tint)
	self.device.Copy(scratch, self.atlas.Texture(), src, dst)
	self.device.Copy(cache.target, scratch, image.Rectangle{}, image.Rectangle{})
	cache.blit(self.device, image.Rectangle{})
	self.device.Destroy(scratch)
}

func (self *Renderer) drawDirect(src, dst image.Rectangle, tint color.RGBA) {
	texture := self.atlas.Texture()
	if tint != gfx.White {
		self.device.SetTint(texture, tint)
		defer self.device.SetTint(texture, gfx.White)
	}
	self.device.Copy(self.device.Output(), texture, src, dst)
}
