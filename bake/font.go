package bake

import "os"
import "fmt"
import "io"
import "io/fs"
import "errors"
import "strings"

import findfont "github.com/flopp/go-findfont"
import "github.com/golang/freetype/truetype"
import "golang.org/x/image/font"

// Parses a TrueType font from its bytes.
func ParseFont(fontBytes []byte) (*truetype.Font, error) {
	return truetype.Parse(fontBytes)
}

// Parses the TrueType font at the given path. Only .ttf
// files are supported.
func ParseFontFromPath(path string) (*truetype.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFontFromPath](), but for embedded filesystems.
func ParseFontFromFS(filesys fs.FS, path string) (*truetype.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Returns the given path if a file exists there. Otherwise, the
// name is searched for in the system font directories (for
// example, "DejaVuSans.ttf").
func LocateFont(nameOrPath string) (string, error) {
	info, err := os.Stat(nameOrPath)
	if err == nil && !info.IsDir() { return nameOrPath, nil }
	path, err := findfont.Find(nameOrPath)
	if err != nil { return "", fmt.Errorf("font %q not found: %w", nameOrPath, err) }
	return path, nil
}

// Creates a face for rasterizing the font at the given pixel size.
func NewFace(ttf *truetype.Font, size float64) font.Face {
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func parseFontFileAndClose(file io.ReadCloser) (*truetype.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFont(fontBytes)
}

func hasValidFontExtension(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".ttf")
}
