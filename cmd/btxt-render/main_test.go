package main

import "os"
import "io"
import "image"
import "image/png"
import "path/filepath"
import "testing"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/pggk/btxt/bake"

// Writes a baked atlas and its manifest into dir, returning
// the manifest path.
func writeAtlas(t *testing.T, dir string) string {
	ttf, err := bake.ParseFont(goregular.TTF)
	if err != nil { t.Fatal(err) }
	opts := bake.Options{CellWidth: 16, CellHeight: 16}
	img, err := bake.Bake(bake.NewFace(ttf, 12), bake.ASCII, opts)
	if err != nil { t.Fatal(err) }

	file, err := os.Create(filepath.Join(dir, "font.png"))
	if err != nil { t.Fatal(err) }
	err = png.Encode(file, img)
	if err != nil { t.Fatal(err) }
	err = file.Close()
	if err != nil { t.Fatal(err) }

	data, err := bake.ManifestFor("font.png", bake.ASCII, opts).Marshal()
	if err != nil { t.Fatal(err) }
	manifestPath := filepath.Join(dir, "font.json")
	err = os.WriteFile(manifestPath, data, 0644)
	if err != nil { t.Fatal(err) }
	return manifestPath
}

func decodeOutput(t *testing.T, path string) image.Image {
	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil { t.Fatal(err) }
	return img
}

// Returns whether any pixel differs from the top-left one.
func hasInk(img image.Image) bool {
	bounds := img.Bounds()
	r0, g0, b0, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != r0 || g != g0 || b != b0 { return true }
		}
	}
	return false
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeAtlas(t, dir)
	out := filepath.Join(dir, "out.png")
	err := run([]string{"-atlas", manifestPath, "-text", "Hello\nworld", "-width", "120", "-height", "60", "-out", out}, io.Discard)
	if err != nil { t.Fatal(err) }
	img := decodeOutput(t, out)
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 60 { t.Fatalf("unexpected size %v", img.Bounds()) }
	if !hasInk(img) { t.Fatal("expected some text on the output") }

	// nothing revealed yet
	err = run([]string{"-atlas", manifestPath, "-text", "Hello", "-reveal", "0", "-out", out}, io.Discard)
	if err != nil { t.Fatal(err) }
	if hasInk(decodeOutput(t, out)) { t.Fatal("expected an empty output") }

	err = run([]string{"-atlas", manifestPath, "-text", "Hello", "-reveal", "2", "-out", out}, io.Discard)
	if err != nil { t.Fatal(err) }
	if !hasInk(decodeOutput(t, out)) { t.Fatal("expected revealed characters") }
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-text", "hi"}, io.Discard)
	if err == nil { t.Fatal("expected error without -atlas") }
	err = run([]string{"-atlas", filepath.Join(dir, "missing.json")}, io.Discard)
	if err == nil { t.Fatal("expected error for missing manifest") }
	manifestPath := writeAtlas(t, dir)
	err = run([]string{"-atlas", manifestPath, "-bg", "nope"}, io.Discard)
	if err == nil { t.Fatal("expected error for invalid background") }
}
