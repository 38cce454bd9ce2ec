// SDL2 demo revealing a text with a typewriter, the same way it
// would run on handhelds using the SDL renderer API.
//
// Usage:
//   btxt-sdl -atlas path/to/font.json [-settings text.ini -section dialog]
//
// Press R to restart the typewriter and Escape to quit.
package main

import "os"
import "fmt"
import "flag"
import "image"
import "log/slog"

import "github.com/veandco/go-sdl2/sdl"

import "github.com/pggk/btxt"
import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/gfx/sdlgfx"
import "github.com/pggk/btxt/internal/cliutil"

const Text = "Hello from btxt!\nThis text is revealed one character at a time, wrapping words that don't fit in the area.\n\nPress R to start again."

const (
	ScreenWidth  = 480
	ScreenHeight = 272
)

func main() {
	manifestPath := flag.String("atlas", "", "path to the atlas manifest (required)")
	settingsPath := flag.String("settings", "", "INI file with text settings")
	section := flag.String("section", "", "INI section to read settings from")
	size := flag.Int("size", 0, "glyph size, overrides the settings")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := cliutil.SetupLogger(os.Stderr, *verbose)
	if *manifestPath == "" {
		fmt.Fprint(os.Stderr, "Usage: btxt-sdl -atlas path/to/font.json\n")
		os.Exit(1)
	}
	err := run(logger, *manifestPath, *settingsPath, *section, *size)
	if err != nil {
		logger.Error("btxt-sdl failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, manifestPath, settingsPath, section string, size int) error {
	settings, err := cliutil.LoadSettings(settingsPath, section, size)
	if err != nil { return err }

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil { return err }
	defer sdl.Quit()

	window, err := sdl.CreateWindow("btxt-sdl", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ScreenWidth, ScreenHeight, sdl.WINDOW_SHOWN)
	if err != nil { return err }
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE)
	if err != nil { return err }
	defer renderer.Destroy()

	device := sdlgfx.New(renderer)
	fontAtlas, err := loadAtlas(device, manifestPath)
	if err != nil { return err }
	defer fontAtlas.Destroy(device)

	textRenderer := btxt.NewRenderer(device, fontAtlas)
	var cache btxt.Combined
	defer cache.Release()
	newTypewriter := func() *btxt.Typewriter {
		writer := btxt.NewTypewriter(Text, settings.CharDuration)
		writer.OnComplete(func() { logger.Info("typewriter done") })
		return writer
	}
	writer := newTypewriter()

	clock := &sdlgfx.Clock{}
	area := image.Rect(8, 8, ScreenWidth-8, ScreenHeight-8)
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED { break }
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_r:
					cache.Reset()
					writer = newTypewriter()
				}
			}
		}

		_ = renderer.SetDrawColor(0, 0, 20, 255)
		_ = renderer.Clear()
		textRenderer.DrawTypewriter(writer, &cache, area, settings.Style, clock.Elapsed())
		device.Present()
		sdl.Delay(16)
	}
}

// Loads the atlas image through SDL_image instead of the Go decoders.
func loadAtlas(device *sdlgfx.Device, manifestPath string) (*atlas.Atlas, error) {
	manifest, err := atlas.LoadManifest(manifestPath)
	if err != nil { return nil, err }
	texture, err := device.LoadTextureFile(manifest.ImagePath(manifestPath))
	if err != nil { return nil, err }
	return atlas.New(texture, manifest.Chars, manifest.CellWidth, manifest.CellHeight), nil
}
