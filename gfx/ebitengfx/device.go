// The ebitengfx subpackage implements [gfx.Device] on top of
// Ebitengine images.
//
// Ebitengine hands the screen to the game on each Draw() call,
// so the screen must be set with [Device.SetScreen]() at the start
// of every frame, before any btxt drawing:
//   func (self *Game) Draw(screen *ebiten.Image) {
//       self.device.SetScreen(screen)
//       self.renderer.Draw("Hello", 8, 8, self.style, nil)
//   }
package ebitengfx

import "errors"
import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/pggk/btxt/gfx"

var _ gfx.Device = (*Device)(nil)
var _ gfx.Loader = (*Device)(nil)
var _ gfx.Clock = TickClock{}

// A texture wrapping an [*ebiten.Image].
type Texture struct {
	image *ebiten.Image
	tint  color.RGBA
}

// Wraps an existing image so it can be used with a [Device].
func Wrap(img *ebiten.Image) *Texture {
	return &Texture{image: img, tint: gfx.White}
}

// Implements [gfx.Texture].
func (self *Texture) Size() (int, int) {
	if self.image == nil { return 0, 0 }
	return self.image.Size()
}

// Returns the underlying image.
func (self *Texture) Image() *ebiten.Image { return self.image }

// A rendering device drawing on Ebitengine images.
type Device struct {
	screen *Texture
}

// Creates a device. The screen must be set before drawing.
func New() *Device {
	return &Device{screen: &Texture{tint: gfx.White}}
}

// Sets the image that [Device.Output]() refers to.
func (self *Device) SetScreen(screen *ebiten.Image) {
	self.screen.image = screen
}

// Implements [gfx.Device].Output(). The returned texture stays
// the same across [Device.SetScreen]() calls.
func (self *Device) Output() gfx.Texture { return self.screen }

// Implements [gfx.Device].NewTarget(...).
func (self *Device) NewTarget(width, height int) (gfx.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("ebitengfx: invalid target size (is the screen set?)")
	}
	return Wrap(ebiten.NewImage(width, height)), nil
}

// Implements [gfx.Loader].LoadTexture(...).
func (self *Device) LoadTexture(img image.Image) (gfx.Texture, error) {
	if img.Bounds().Empty() { return nil, errors.New("ebitengfx: empty image") }
	return Wrap(ebiten.NewImageFromImage(img)), nil
}

// Implements [gfx.Device].Destroy(...). The screen is never disposed.
func (self *Device) Destroy(tex gfx.Texture) {
	texture := asTexture(tex)
	if texture == nil || texture == self.screen || texture.image == nil { return }
	texture.image.Dispose()
	texture.image = nil
}

// Implements [gfx.Device].Clear(...).
func (self *Device) Clear(target gfx.Texture, c color.Color) {
	texture := asTexture(target)
	if texture == nil || texture.image == nil { return }
	_, _, _, a := c.RGBA()
	if a == 0 {
		texture.image.Clear()
	} else {
		texture.image.Fill(c)
	}
}

// Implements [gfx.Device].SetTint(...).
func (self *Device) SetTint(tex gfx.Texture, c color.RGBA) {
	texture := asTexture(tex)
	if texture == nil { return }
	texture.tint = c
}

// Implements [gfx.Device].Copy(...). Scaling uses nearest
// neighbor filtering. Source rects falling partially outside the
// source image are clipped, and the destination rect shrinks
// proportionally.
func (self *Device) Copy(target, src gfx.Texture, srcRect, dstRect image.Rectangle) {
	dst, from := asTexture(target), asTexture(src)
	if dst == nil || from == nil || dst.image == nil || from.image == nil { return }
	if srcRect.Empty() { srcRect = from.image.Bounds() }
	if dstRect.Empty() { dstRect = dst.image.Bounds() }
	srcRect, dstRect = gfx.ClipSource(from.image.Bounds(), srcRect, dstRect)
	if srcRect.Empty() || dstRect.Empty() { return }

	opts := ebiten.DrawImageOptions{}
	opts.GeoM = copyGeoM(srcRect, dstRect)
	if from.tint != gfx.White {
		opts.ColorM.Scale(colorToFloat64(from.tint))
	}
	opts.Filter = ebiten.FilterNearest
	dst.image.DrawImage(from.image.SubImage(srcRect).(*ebiten.Image), &opts)
}

// A [gfx.Clock] for Ebitengine's fixed timestep. Each Update()
// lasts 1/TPS seconds, regardless of the actual time elapsed.
type TickClock struct{}

// Implements [gfx.Clock].
func (TickClock) Elapsed() float64 {
	return 1.0 / float64(ebiten.MaxTPS())
}

// Maps a sub image taken at srcRect, which is drawn from (0, 0),
// onto dstRect.
func copyGeoM(srcRect, dstRect image.Rectangle) ebiten.GeoM {
	var geoM ebiten.GeoM
	geoM.Scale(
		float64(dstRect.Dx())/float64(srcRect.Dx()),
		float64(dstRect.Dy())/float64(srcRect.Dy()),
	)
	geoM.Translate(float64(dstRect.Min.X), float64(dstRect.Min.Y))
	return geoM
}

// Convert a color to its float64 [0, 1.0] components.
func colorToFloat64(rgba color.RGBA) (float64, float64, float64, float64) {
	return float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255, float64(rgba.A)/255
}

func asTexture(tex gfx.Texture) *Texture {
	texture, _ := tex.(*Texture)
	return texture
}
