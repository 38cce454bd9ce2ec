// The softgfx subpackage implements [gfx.Device] on the CPU with
// image/draw. Slow, but available everywhere and easy to inspect
// in tests.
package softgfx

import "os"
import "errors"
import "image"
import "image/color"
import "image/draw"
import "image/png"

import xdraw "golang.org/x/image/draw"

import "github.com/pggk/btxt/gfx"

var _ gfx.Device = (*Device)(nil)
var _ gfx.Loader = (*Device)(nil)

// A texture backed by an [*image.RGBA] with zero origin.
type Texture struct {
	img  *image.RGBA
	tint color.RGBA
}

// Implements [gfx.Texture]. Destroyed textures have zero size.
func (self *Texture) Size() (int, int) {
	if self.img == nil { return 0, 0 }
	return self.img.Rect.Dx(), self.img.Rect.Dy()
}

// Returns the underlying image, or nil if the texture was destroyed.
func (self *Texture) Image() *image.RGBA { return self.img }

// A CPU rendering device drawing into an in-memory output image.
type Device struct {
	output *Texture
	live   int
}

// Creates a device with an output of the given size, initially
// transparent.
func New(width, height int) *Device {
	if width <= 0 || height <= 0 { panic("softgfx output size must be positive") }
	return &Device{
		output: &Texture{img: image.NewRGBA(image.Rect(0, 0, width, height)), tint: gfx.White},
	}
}

// Implements [gfx.Device].Output().
func (self *Device) Output() gfx.Texture { return self.output }

// Returns the output image.
func (self *Device) OutputImage() *image.RGBA { return self.output.img }

// Returns the number of textures created through the device that
// haven't been destroyed yet. The output doesn't count.
func (self *Device) Live() int { return self.live }

// Implements [gfx.Device].NewTarget(...).
func (self *Device) NewTarget(width, height int) (gfx.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("softgfx: invalid target size")
	}
	self.live += 1
	return &Texture{img: image.NewRGBA(image.Rect(0, 0, width, height)), tint: gfx.White}, nil
}

// Implements [gfx.Loader].LoadTexture(...). The image is copied,
// its origin moved to (0, 0).
func (self *Device) LoadTexture(img image.Image) (gfx.Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() { return nil, errors.New("softgfx: empty image") }
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	self.live += 1
	return &Texture{img: rgba, tint: gfx.White}, nil
}

// Implements [gfx.Device].Destroy(...).
func (self *Device) Destroy(tex gfx.Texture) {
	texture := asTexture(tex)
	if texture == nil || texture == self.output || texture.img == nil { return }
	texture.img = nil
	self.live -= 1
}

// Implements [gfx.Device].Clear(...).
func (self *Device) Clear(target gfx.Texture, c color.Color) {
	texture := asTexture(target)
	if texture == nil || texture.img == nil { return }
	draw.Draw(texture.img, texture.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Implements [gfx.Device].SetTint(...).
func (self *Device) SetTint(tex gfx.Texture, c color.RGBA) {
	texture := asTexture(tex)
	if texture == nil { return }
	texture.tint = c
}

// Implements [gfx.Device].Copy(...). Source rects falling partially
// outside the source image are clipped, and the destination rect
// shrinks proportionally.
func (self *Device) Copy(target, src gfx.Texture, srcRect, dstRect image.Rectangle) {
	dst, from := asTexture(target), asTexture(src)
	if dst == nil || from == nil || dst.img == nil || from.img == nil { return }
	if srcRect.Empty() { srcRect = from.img.Rect }
	if dstRect.Empty() { dstRect = dst.img.Rect }
	srcRect, dstRect = gfx.ClipSource(from.img.Rect, srcRect, dstRect)
	if srcRect.Empty() || dstRect.Empty() { return }

	var source image.Image = from.img
	if from.tint != gfx.White {
		source = tintRegion(from.img, srcRect, from.tint)
	}

	if srcRect.Dx() == dstRect.Dx() && srcRect.Dy() == dstRect.Dy() {
		draw.Draw(dst.img, dstRect, source, srcRect.Min, draw.Over)
	} else {
		xdraw.NearestNeighbor.Scale(dst.img, dstRect, source, srcRect, xdraw.Over, nil)
	}
}

// Writes the output image to the given path as a PNG.
func (self *Device) ExportPNG(path string) error {
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, self.output.img)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func asTexture(tex gfx.Texture) *Texture {
	texture, _ := tex.(*Texture)
	return texture
}
