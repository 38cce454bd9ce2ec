// The sdlgfx subpackage implements [gfx.Device] on top of an
// SDL2 renderer.
//
// SDL renderers have an implicit render target. The device switches
// it as needed, but always restores the previous one before
// returning, so btxt calls can be mixed with regular SDL drawing.
package sdlgfx

import "errors"
import "fmt"
import "image"
import "image/color"
import "image/draw"

import "github.com/veandco/go-sdl2/img"
import "github.com/veandco/go-sdl2/sdl"

import "github.com/pggk/btxt/gfx"

var _ gfx.Device = (*Device)(nil)
var _ gfx.Loader = (*Device)(nil)
var _ gfx.Presenter = (*Device)(nil)
var _ gfx.Clock = (*Clock)(nil)

// A texture wrapping an [*sdl.Texture]. The device output is
// represented by a texture with a nil SDL texture.
type Texture struct {
	texture *sdl.Texture
	width   int
	height  int
	device  *Device
}

// Implements [gfx.Texture].
func (self *Texture) Size() (int, int) {
	if self.texture == nil && self.device != nil {
		width, height, err := self.device.renderer.GetOutputSize()
		if err != nil { return 0, 0 }
		return int(width), int(height)
	}
	return self.width, self.height
}

// Returns the underlying SDL texture. Nil for the output.
func (self *Texture) SDLTexture() *sdl.Texture { return self.texture }

// A rendering device for an SDL renderer. The renderer must
// support render targets.
type Device struct {
	renderer *sdl.Renderer
	output   *Texture
}

// Creates a device for the given renderer.
func New(renderer *sdl.Renderer) *Device {
	if renderer == nil { panic("sdlgfx.New(nil)") }
	device := &Device{renderer: renderer}
	device.output = &Texture{device: device}
	return device
}

// Returns the SDL renderer.
func (self *Device) Renderer() *sdl.Renderer { return self.renderer }

// Implements [gfx.Device].Output().
func (self *Device) Output() gfx.Texture { return self.output }

// Implements [gfx.Device].NewTarget(...).
func (self *Device) NewTarget(width, height int) (gfx.Texture, error) {
	if width <= 0 || height <= 0 { return nil, errors.New("sdlgfx: invalid target size") }
	format := uint32(sdl.PIXELFORMAT_RGBA8888)
	texture, err := self.renderer.CreateTexture(format, sdl.TEXTUREACCESS_TARGET, int32(width), int32(height))
	if err != nil { return nil, fmt.Errorf("sdlgfx: creating target: %w", err) }
	err = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		_ = texture.Destroy()
		return nil, fmt.Errorf("sdlgfx: setting target blend mode: %w", err)
	}
	return &Texture{texture: texture, width: width, height: height}, nil
}

// Implements [gfx.Loader].LoadTexture(...).
func (self *Device) LoadTexture(source image.Image) (gfx.Texture, error) {
	bounds := source.Bounds()
	if bounds.Empty() { return nil, errors.New("sdlgfx: empty image") }
	surface, err := imageToSurface(source)
	if err != nil { return nil, fmt.Errorf("sdlgfx: converting image: %w", err) }
	defer surface.Free()

	texture, err := self.renderer.CreateTextureFromSurface(surface)
	if err != nil { return nil, fmt.Errorf("sdlgfx: creating texture: %w", err) }
	err = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		_ = texture.Destroy()
		return nil, fmt.Errorf("sdlgfx: setting texture blend mode: %w", err)
	}
	return &Texture{texture: texture, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// Loads a texture directly from an image file with SDL_image,
// without going through Go image decoders.
func (self *Device) LoadTextureFile(path string) (gfx.Texture, error) {
	texture, err := img.LoadTexture(self.renderer, path)
	if err != nil { return nil, fmt.Errorf("sdlgfx: loading %s: %w", path, err) }
	_, _, width, height, err := texture.Query()
	if err != nil {
		_ = texture.Destroy()
		return nil, fmt.Errorf("sdlgfx: querying %s: %w", path, err)
	}
	err = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		_ = texture.Destroy()
		return nil, fmt.Errorf("sdlgfx: setting texture blend mode: %w", err)
	}
	return &Texture{texture: texture, width: int(width), height: int(height)}, nil
}

// Implements [gfx.Device].Destroy(...). The output is ignored.
func (self *Device) Destroy(tex gfx.Texture) {
	texture := asTexture(tex)
	if texture == nil || texture.texture == nil { return }
	_ = texture.texture.Destroy()
	texture.texture = nil
	texture.width, texture.height = 0, 0
}

// Implements [gfx.Device].Clear(...).
func (self *Device) Clear(target gfx.Texture, c color.Color) {
	texture := asTexture(target)
	if texture == nil { return }
	restore := self.bind(texture)
	defer restore()

	r, g, b, a, _ := self.renderer.GetDrawColor()
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	_ = self.renderer.SetDrawColor(rgba.R, rgba.G, rgba.B, rgba.A)
	_ = self.renderer.Clear()
	_ = self.renderer.SetDrawColor(r, g, b, a)
}

// Implements [gfx.Device].SetTint(...).
func (self *Device) SetTint(tex gfx.Texture, c color.RGBA) {
	texture := asTexture(tex)
	if texture == nil || texture.texture == nil { return }
	_ = texture.texture.SetColorMod(c.R, c.G, c.B)
	_ = texture.texture.SetAlphaMod(c.A)
}

// Implements [gfx.Device].Copy(...).
func (self *Device) Copy(target, src gfx.Texture, srcRect, dstRect image.Rectangle) {
	dst, from := asTexture(target), asTexture(src)
	if dst == nil || from == nil || from.texture == nil { return }
	restore := self.bind(dst)
	defer restore()
	_ = self.renderer.Copy(from.texture, toSDLRect(srcRect), toSDLRect(dstRect))
}

// Implements [gfx.Presenter].
func (self *Device) Present() { self.renderer.Present() }

// Sets the render target and returns a function restoring the
// previous one.
func (self *Device) bind(texture *Texture) func() {
	previous := self.renderer.GetRenderTarget()
	if previous == texture.texture { return func() {} }
	_ = self.renderer.SetRenderTarget(texture.texture)
	return func() { _ = self.renderer.SetRenderTarget(previous) }
}

// A [gfx.Clock] measuring wall time with the SDL tick counter.
type Clock struct {
	last    uint32
	started bool
}

// Implements [gfx.Clock]. The first call returns zero.
func (self *Clock) Elapsed() float64 {
	now := sdl.GetTicks()
	if !self.started {
		self.started = true
		self.last = now
		return 0
	}
	elapsed := now - self.last
	self.last = now
	return float64(elapsed) / 1000
}

// Empty rects stand for the whole texture, which SDL expresses as nil.
func toSDLRect(rect image.Rectangle) *sdl.Rect {
	if rect.Empty() { return nil }
	return &sdl.Rect{
		X: int32(rect.Min.X), Y: int32(rect.Min.Y),
		W: int32(rect.Dx()), H: int32(rect.Dy()),
	}
}

func imageToSurface(source image.Image) (*sdl.Surface, error) {
	bounds := source.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, source, bounds.Min, draw.Src)

	format := uint32(sdl.PIXELFORMAT_ABGR8888)
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(bounds.Dx()), int32(bounds.Dy()), 32, format)
	if err != nil { return nil, err }
	err = surface.Lock()
	if err != nil {
		surface.Free()
		return nil, err
	}

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < rgba.Rect.Dy(); y++ {
		copy(pixels[y*pitch:], rgba.Pix[y*rgba.Stride:(y+1)*rgba.Stride])
	}
	surface.Unlock()
	return surface, nil
}

func asTexture(tex gfx.Texture) *Texture {
	texture, _ := tex.(*Texture)
	return texture
}
