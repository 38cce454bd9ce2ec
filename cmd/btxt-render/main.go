// Renders text with a bitmap font atlas into a PNG file, without
// opening any window. Useful for previewing atlases and settings.
//
// Usage:
//   btxt-render -atlas font.json -text "Hello world!" -out hello.png
package main

import "os"
import "io"
import "fmt"
import "flag"
import "image"
import "errors"

import "github.com/pggk/btxt"
import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/gfx/softgfx"
import "github.com/pggk/btxt/internal/cliutil"

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "btxt-render: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("btxt-render", flag.ContinueOnError)
	flags.SetOutput(stderr)
	manifestPath := flags.String("atlas", "", "path to the atlas manifest (required)")
	text := flags.String("text", "", "text to render")
	textFile := flags.String("text-file", "", "file with the text to render, overrides -text")
	width := flags.Int("width", 320, "output width")
	height := flags.Int("height", 240, "output height")
	margin := flags.Int("margin", 8, "margin around the text area")
	settingsPath := flags.String("settings", "", "INI file with text settings")
	section := flags.String("section", "", "INI section to read settings from")
	size := flags.Int("size", 0, "glyph size, overrides the settings")
	background := flags.String("bg", "#000000", "background color")
	reveal := flags.Int("reveal", -1, "if >= 0, render a typewriter after revealing this many characters")
	out := flags.String("out", "out.png", "output PNG path")
	verbose := flags.Bool("v", false, "enable debug logging")
	err := flags.Parse(args)
	if err != nil { return err }

	logger := cliutil.SetupLogger(stderr, *verbose)
	if *manifestPath == "" { return errors.New("missing -atlas") }
	if *width <= 0 || *height <= 0 { return fmt.Errorf("invalid output size %dx%d", *width, *height) }
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil { return err }
		*text = string(data)
	}
	settings, err := cliutil.LoadSettings(*settingsPath, *section, *size)
	if err != nil { return err }
	bgColor, err := btxt.ParseHexColor(*background)
	if err != nil { return err }

	device := softgfx.New(*width, *height)
	fontAtlas, err := atlas.Load(device, *manifestPath)
	if err != nil { return err }
	defer fontAtlas.Destroy(device)
	device.Clear(device.Output(), bgColor)

	renderer := btxt.NewRenderer(device, fontAtlas)
	area := image.Rect(*margin, *margin, *width-*margin, *height-*margin)
	if *reveal >= 0 {
		renderTypewriter(renderer, *text, area, settings, *reveal)
	} else {
		renderer.DrawMultiline(*text, area, settings.Style, nil, nil)
	}

	err = device.ExportPNG(*out)
	if err != nil { return err }
	logger.Info("rendered", "out", *out, "width", *width, "height", *height)
	return nil
}

// Ticks a typewriter until the given number of characters has been
// processed or the reveal completes.
func renderTypewriter(renderer *btxt.Renderer, text string, area image.Rectangle, settings btxt.Settings, count int) {
	writer := btxt.NewTypewriter(text, 0)
	defer writer.Release()
	renderer.DrawTypewriter(writer, nil, area, settings.Style, 0) // lays out the text
	for writer.Cursor() < count && !writer.Done() && writer.Len() > 0 {
		renderer.DrawTypewriter(writer, nil, area, settings.Style, 1)
	}
}
