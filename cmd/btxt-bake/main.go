// Bakes a TrueType font into a fixed-cell atlas PNG and writes the
// matching manifest next to it.
//
// Usage:
//   btxt-bake -font font.ttf -size 24 -cell 32 -out assets/font.png
//
// The command above creates assets/font.png and assets/font.json.
package main

import "os"
import "io"
import "fmt"
import "flag"
import "errors"
import "strings"
import "image/png"
import "path/filepath"

import "github.com/pggk/btxt/bake"
import "github.com/pggk/btxt/internal/cliutil"

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "btxt-bake: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("btxt-bake", flag.ContinueOnError)
	flags.SetOutput(stderr)
	fontPath := flags.String("font", "", "path or system font file name of the .ttf font (required)")
	size := flags.Float64("size", 24, "rasterization size in pixels")
	cell := flags.Int("cell", 32, "cell width and height")
	cellWidth := flags.Int("cell-width", 0, "cell width, overrides -cell")
	cellHeight := flags.Int("cell-height", 0, "cell height, overrides -cell")
	columns := flags.Int("cols", bake.DefaultColumns, "cells per atlas row")
	chars := flags.String("chars", bake.ASCII, "characters to include, in cell order")
	out := flags.String("out", "font.png", "output PNG path, the manifest uses the same name with .json")
	verbose := flags.Bool("v", false, "enable debug logging")
	err := flags.Parse(args)
	if err != nil { return err }

	logger := cliutil.SetupLogger(stderr, *verbose)
	if *fontPath == "" { return errors.New("missing -font") }
	opts := bake.Options{CellWidth: *cell, CellHeight: *cell, Columns: *columns}
	if *cellWidth > 0 { opts.CellWidth = *cellWidth }
	if *cellHeight > 0 { opts.CellHeight = *cellHeight }

	path, err := bake.LocateFont(*fontPath)
	if err != nil { return err }
	ttf, err := bake.ParseFontFromPath(path)
	if err != nil { return err }
	img, err := bake.Bake(bake.NewFace(ttf, *size), *chars, opts)
	if err != nil { return err }

	file, err := os.Create(*out)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if err != nil { return err }

	manifestPath := strings.TrimSuffix(*out, filepath.Ext(*out)) + ".json"
	manifest := bake.ManifestFor(filepath.Base(*out), *chars, opts)
	data, err := manifest.Marshal()
	if err != nil { return err }
	err = os.WriteFile(manifestPath, data, 0644)
	if err != nil { return err }

	logger.Info("atlas baked", "image", *out, "manifest", manifestPath,
		"width", img.Rect.Dx(), "height", img.Rect.Dy())
	return nil
}
