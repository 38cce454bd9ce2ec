package atlas

import "os"
import "fmt"
import "errors"
import "path/filepath"

import "github.com/tidwall/gjson"
import "github.com/tidwall/sjson"

import "github.com/pggk/btxt/gfx"

var ErrInvalidManifest = errors.New("invalid atlas manifest")

// The description of an atlas stored next to its image.
type Manifest struct {
	Image      string // image path, relative to the manifest
	Chars      string // characters in cell order
	CellWidth  int
	CellHeight int
}

// Parses a JSON manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if !gjson.ValidBytes(data) {
		return manifest, fmt.Errorf("%w: malformed json", ErrInvalidManifest)
	}
	result := gjson.ParseBytes(data)
	manifest.Image = result.Get("image").String()
	manifest.Chars = result.Get("chars").String()
	manifest.CellWidth = int(result.Get("cell.width").Int())
	manifest.CellHeight = int(result.Get("cell.height").Int())
	return manifest, manifest.validate()
}

// Reads and parses the manifest at the given path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil { return Manifest{}, err }
	manifest, err := ParseManifest(data)
	if err != nil { return manifest, fmt.Errorf("%s: %w", path, err) }
	return manifest, nil
}

// Encodes the manifest as JSON.
func (self Manifest) Marshal() ([]byte, error) {
	if err := self.validate(); err != nil { return nil, err }
	data := []byte(`{}`)
	var err error
	data, err = sjson.SetBytes(data, "image", self.Image)
	if err != nil { return nil, err }
	data, err = sjson.SetBytes(data, "chars", self.Chars)
	if err != nil { return nil, err }
	data, err = sjson.SetBytes(data, "cell.width", self.CellWidth)
	if err != nil { return nil, err }
	return sjson.SetBytes(data, "cell.height", self.CellHeight)
}

// Returns the path of the atlas image for a manifest
// stored at manifestPath.
func (self Manifest) ImagePath(manifestPath string) string {
	if filepath.IsAbs(self.Image) { return self.Image }
	return filepath.Join(filepath.Dir(manifestPath), self.Image)
}

func (self Manifest) validate() error {
	if self.Image == "" { return fmt.Errorf("%w: missing image", ErrInvalidManifest) }
	if self.Chars == "" { return fmt.Errorf("%w: missing chars", ErrInvalidManifest) }
	if self.CellWidth <= 0 || self.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size must be positive (got %dx%d)",
			ErrInvalidManifest, self.CellWidth, self.CellHeight)
	}
	return nil
}

// Loads the manifest at the given path, decodes the image it refers
// to and uploads it through the loader.
func Load(loader gfx.Loader, manifestPath string) (*Atlas, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil { return nil, err }

	img, err := DecodeImage(manifest.ImagePath(manifestPath))
	if err != nil { return nil, err }
	texture, err := loader.LoadTexture(img)
	if err != nil { return nil, fmt.Errorf("uploading atlas texture: %w", err) }
	return New(texture, manifest.Chars, manifest.CellWidth, manifest.CellHeight), nil
}
