package atlas

import "os"
import "io"
import "fmt"
import "image"
import "strings"
import "path/filepath"

import _ "image/png"
import _ "golang.org/x/image/bmp"
import _ "golang.org/x/image/webp"
import _ "github.com/lukegb/dds"

var validImageExtensions = []string{".png", ".bmp", ".webp", ".dds"}

// Decodes the atlas image at the given path. Supported formats
// are PNG, BMP, WebP and DDS.
func DecodeImage(path string) (image.Image, error) {
	if !hasValidImageExtension(path) {
		return nil, fmt.Errorf("unsupported atlas image '%s'", path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	img, err := DecodeImageFrom(file)
	closeErr := file.Close()
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return img, closeErr
}

// Decodes an atlas image from the given reader, detecting
// the format from its contents.
func DecodeImageFrom(reader io.Reader) (image.Image, error) {
	img, _, err := image.Decode(reader)
	return img, err
}

func hasValidImageExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range validImageExtensions {
		if ext == valid { return true }
	}
	return false
}
