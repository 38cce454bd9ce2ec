// Ebitengine demo showing a static title drawn through a render
// cache and a typewriter revealing a longer text below it.
//
// Usage:
//   btxt-demo -atlas path/to/font.json [-settings text.ini -section dialog]
//
// Press R to restart the typewriter.
package main

import "os"
import "fmt"
import "flag"
import "image"
import "image/color"
import "log/slog"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/sqweek/dialog"

import "github.com/pggk/btxt"
import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/gfx"
import "github.com/pggk/btxt/gfx/ebitengfx"
import "github.com/pggk/btxt/internal/cliutil"

const Title = "btxt typewriter"

const Text = "Lately, color has been fading out of this world. I don't know where they sent the original painter, but the landscape doesn't vibrate quite the same anymore.\n\nPress R to start again."

const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

type Game struct {
	device     *ebitengfx.Device
	renderer   *btxt.Renderer
	clock      gfx.Clock
	settings   btxt.Settings
	titleCache btxt.Combined
	writer     *btxt.Typewriter
	pending    float64 // seconds not yet consumed by the typewriter
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (self *Game) Update() error {
	self.pending += self.clock.Elapsed()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		self.writer.Release()
		self.writer = self.newTypewriter()
	}
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 20, 255})
	self.device.SetScreen(screen)

	titleStyle := self.settings.Style
	titleStyle.Size = self.settings.Style.Size * 3 / 2
	titleArea := image.Rect(16, 16, ScreenWidth-16, 16+titleStyle.Size)
	self.renderer.DrawMultiline(Title, titleArea, titleStyle, &self.titleCache, nil)

	area := image.Rect(16, titleArea.Max.Y+16, ScreenWidth-16, ScreenHeight-16)
	self.renderer.DrawTypewriter(self.writer, nil, area, self.settings.Style, self.pending)
	self.pending = 0
}

func (self *Game) newTypewriter() *btxt.Typewriter {
	writer := btxt.NewTypewriter(Text, self.settings.CharDuration)
	writer.OnComplete(func() { btxt.Logger().Info("typewriter done") })
	return writer
}

func main() {
	manifestPath := flag.String("atlas", "", "path to the atlas manifest (required)")
	settingsPath := flag.String("settings", "", "INI file with text settings")
	section := flag.String("section", "", "INI section to read settings from")
	size := flag.Int("size", 0, "glyph size, overrides the settings")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := cliutil.SetupLogger(os.Stderr, *verbose)
	if *manifestPath == "" {
		fmt.Fprint(os.Stderr, "Usage: btxt-demo -atlas path/to/font.json\n")
		os.Exit(1)
	}
	settings, err := cliutil.LoadSettings(*settingsPath, *section, *size)
	if err != nil { fail(logger, "can't load settings", err) }

	device := ebitengfx.New()
	fontAtlas, err := atlas.Load(device, *manifestPath)
	if err != nil { fail(logger, "can't load atlas", err) }

	game := &Game{
		device:   device,
		renderer: btxt.NewRenderer(device, fontAtlas),
		clock:    ebitengfx.TickClock{},
		settings: settings,
	}
	game.writer = game.newTypewriter()

	ebiten.SetWindowTitle("btxt-demo")
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	err = ebiten.RunGame(game)
	game.writer.Release()
	game.titleCache.Release()
	fontAtlas.Destroy(device)
	if err != nil { fail(logger, "game loop failed", err) }
}

// Logs the error, shows it in a message box and exits.
func fail(logger *slog.Logger, message string, err error) {
	logger.Error(message, "error", err)
	dialog.Message("%s: %s", message, err).Title("btxt-demo error").Error()
	os.Exit(1)
}
