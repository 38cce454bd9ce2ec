package btxt

import "image"

import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/token"

// The reveal state of a [Typewriter].
type TypewriterState uint8

const (
	TypewriterIdle      TypewriterState = iota // nothing revealed yet
	TypewriterRevealing                        // some characters revealed
	TypewriterComplete                         // all characters revealed
)

// Returns the state name.
func (self TypewriterState) String() string {
	switch self {
	case TypewriterIdle: return "Idle"
	case TypewriterRevealing: return "Revealing"
	case TypewriterComplete: return "Complete"
	default:
		return "TypewriterState(?)"
	}
}

// A typewriter reveals a text one character at a time, advancing
// through [Renderer.DrawTypewriter]() calls each frame.
//
// Revealed characters are accumulated in a [Combined] cache, so each
// tick only draws the newly revealed character. All the characters
// of the text are revealed, spaces included, with line breaks only
// changing the line. Lines are wrapped like [Lines]() does, using
// the area and style given on each tick.
//
// Typewriters are not safe for concurrent use.
type Typewriter struct {
	text     string
	duration float64

	laidOut bool
	params  typewriterLayout
	tokens  []token.Token
	lines   []int // display line of each token

	cursor int
	timer  float64
	penX   int
	penSet bool

	revealed []revealedGlyph
	uncached bool // some revealed glyphs are missing from the cache

	onComplete func()
	notified   bool
	ownCache   *Combined
}

// Parameters the line breaks and the pen origin depend on.
type typewriterLayout struct {
	size, horzOffset int
	width, x         int
}

type revealedGlyph struct {
	tok  token.Token
	x, y int
}

// Creates a typewriter for the given text, revealing a new character
// whenever more than duration seconds have elapsed since the previous
// one. Negative durations are treated as zero.
func NewTypewriter(text string, duration float64) *Typewriter {
	if duration < 0 { duration = 0 }
	return &Typewriter{text: text, duration: duration}
}

// Sets a function to be called once, right after the last
// character is revealed. Texts with no visible characters never
// complete a reveal and never invoke the handler.
func (self *Typewriter) OnComplete(handler func()) { self.onComplete = handler }

// Returns the typewriter text.
func (self *Typewriter) Text() string { return self.text }

// Returns the seconds between character reveals.
func (self *Typewriter) Duration() float64 { return self.duration }

// Returns the seconds accumulated since the last reveal.
func (self *Typewriter) Timer() float64 { return self.timer }

// Returns the x coordinate where the next character will be drawn.
// Only meaningful once the first character has been revealed.
func (self *Typewriter) PenX() int { return self.penX }

// Returns the number of characters processed so far, including
// characters skipped because they were missing from the atlas.
func (self *Typewriter) Cursor() int { return self.cursor }

// Returns the number of characters in the reveal sequence. Zero
// until the text has been laid out on the first draw.
func (self *Typewriter) Len() int { return len(self.tokens) }

// Returns the current reveal state.
func (self *Typewriter) State() TypewriterState {
	if self.laidOut && self.cursor >= len(self.tokens) && len(self.tokens) > 0 {
		return TypewriterComplete
	}
	if self.cursor == 0 { return TypewriterIdle }
	return TypewriterRevealing
}

// Returns whether all characters have been revealed.
func (self *Typewriter) Done() bool { return self.State() == TypewriterComplete }

// Releases the cache created by the typewriter when drawn without
// an explicit cache. Caches passed by the caller are not affected.
func (self *Typewriter) Release() {
	if self.ownCache == nil { return }
	self.ownCache.Release()
	self.ownCache = nil
}

// Advances the typewriter by elapsed seconds and draws it inside the
// given area. At most one character is revealed per call, and only
// once the accumulated time exceeds the typewriter duration. With
// a zero duration, any positive elapsed time reveals a character.
//
// If the area width, the size or the horizontal offset change, the
// pending characters are wrapped again. Characters already revealed
// stay where they were drawn.
//
// If the cache is nil, the typewriter uses a cache of its own, which
// should be released with [Typewriter.Release]() when no longer
// needed. If the cache can't be allocated, revealed characters are
// drawn again each call without caching. Once the reveal completes,
// further calls only copy the cached contents to the output.
func (self *Renderer) DrawTypewriter(writer *Typewriter, cache *Combined, area image.Rectangle, style Style, elapsed float64) {
	if cache == nil {
		if writer.ownCache == nil { writer.ownCache = &Combined{} }
		cache = writer.ownCache
	}
	writer.layout(self.atlas, style, area)
	cached := cache.acquire(self.device)
	if cached && writer.uncached {
		cache.finished = false
		for _, glyph := range writer.revealed {
			self.drawTokens([]token.Token{glyph.tok}, glyph.x, glyph.y, style, cache, false)
		}
		writer.uncached = false
	}

	if writer.cursor >= len(writer.tokens) {
		self.showRevealed(writer, cache, cached, style)
		return
	}

	writer.timer += elapsed
	if writer.timer <= writer.duration {
		self.showRevealed(writer, cache, cached, style)
		return
	}

	line := writer.lines[writer.cursor]
	if !writer.penSet || (writer.cursor > 0 && line > writer.lines[writer.cursor-1]) {
		writer.penX = area.Min.X
		writer.penSet = true
	}

	tok := writer.tokens[writer.cursor]
	if tok != token.Space && self.atlas.IndexOf(tok) == -1 {
		Logger().Debug("btxt: typewriter skipped character missing from atlas",
			"token", tok.String(), "position", writer.cursor)
		writer.cursor += 1
		writer.notifyIfComplete()
		self.showRevealed(writer, cache, cached, style)
		return
	}

	y := area.Min.Y + line*style.LineAdvance()
	if cached {
		cache.finished = false
		self.drawTokens([]token.Token{tok}, writer.penX, y, style, cache, false)
	} else {
		self.showRevealed(writer, cache, false, style)
		self.drawTokens([]token.Token{tok}, writer.penX, y, style, nil, false)
		writer.uncached = true
	}
	if tok != token.Space {
		writer.revealed = append(writer.revealed, revealedGlyph{tok, writer.penX, y})
	}
	writer.penX += style.Advance()
	writer.timer = 0
	writer.cursor += 1
	writer.notifyIfComplete()
}

// ---- helpers ----

func (self *Renderer) showRevealed(writer *Typewriter, cache *Combined, cached bool, style Style) {
	if cached {
		cache.blit(self.device, image.Rectangle{})
		return
	}
	for _, glyph := range writer.revealed {
		self.drawTokens([]token.Token{glyph.tok}, glyph.x, glyph.y, style, nil, false)
	}
}

// Lays out the text on the first call, and again whenever the
// parameters the line breaks depend on change. The token sequence
// doesn't depend on them, so the cursor stays valid, but the pen
// must be placed again for the characters left in the current line.
func (self *Typewriter) layout(fontAtlas *atlas.Atlas, style Style, area image.Rectangle) {
	params := typewriterLayout{style.Size, style.HorzOffset, area.Dx(), area.Min.X}
	if self.laidOut && params == self.params { return }
	relayout := self.laidOut
	self.laidOut = true
	self.params = params
	self.tokens, self.lines = layoutTokens(self.text, style.Size, style.HorzOffset, area.Dx())
	if !relayout || !self.penSet || self.cursor == 0 || self.cursor >= len(self.tokens) { return }

	line := self.lines[self.cursor]
	self.penX = area.Min.X
	for i := self.cursor - 1; i >= 0 && self.lines[i] == line; i-- {
		tok := self.tokens[i]
		if tok == token.Space || fontAtlas.IndexOf(tok) != -1 { self.penX += style.Advance() }
	}
}

func (self *Typewriter) notifyIfComplete() {
	if self.notified || self.cursor < len(self.tokens) { return }
	self.notified = true
	Logger().Debug("btxt: typewriter complete", "characters", len(self.tokens))
	if self.onComplete != nil { self.onComplete() }
}
