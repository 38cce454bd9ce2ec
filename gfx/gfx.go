// The gfx subpackage defines the contracts that btxt expects from
// the platform: a 2D rendering device, a texture loader and a frame
// clock. Implementations live in the softgfx, ebitengfx and sdlgfx
// subpackages.
//
// There's no notion of an "active render target" in these interfaces.
// Every drawing operation receives its destination explicitly, and
// backends built on APIs that do have an implicit target must restore
// the previous one before returning.
package gfx

import "image"
import "image/color"

// A Texture is anything a [Device] can draw from or into.
type Texture interface {
	Size() (width, height int)
}

// The rendering collaborator.
type Device interface {
	// Returns the texture that ends up on screen. Its size is
	// used to allocate offscreen targets.
	Output() Texture

	// Creates an offscreen texture that can be drawn into. The
	// initial contents are undefined until cleared.
	NewTarget(width, height int) (Texture, error)

	// Releases a texture. Textures must not be used afterwards.
	Destroy(tex Texture)

	// Fills the whole target with the given color, replacing
	// its contents (no blending).
	Clear(target Texture, c color.Color)

	// Sets the color modulation applied whenever tex is used as
	// the source of a [Device.Copy]() operation. White disables it.
	SetTint(tex Texture, c color.RGBA)

	// Draws srcRect from src into dstRect of target, scaling if
	// the sizes differ and blending over the existing contents.
	// Empty rectangles stand for the whole texture.
	Copy(target, src Texture, srcRect, dstRect image.Rectangle)
}

// The image-loading collaborator.
type Loader interface {
	LoadTexture(img image.Image) (Texture, error)
}

// The frame-timing collaborator.
type Clock interface {
	// Returns the seconds elapsed since the previous call.
	Elapsed() float64
}

// Optional interface for devices that must be explicitly flipped
// at the end of a frame.
type Presenter interface {
	Present()
}

// Commonly used tint value that leaves colors untouched.
var White = color.RGBA{255, 255, 255, 255}

// Commonly used clear value for offscreen targets.
var Transparent = color.RGBA{0, 0, 0, 0}

// Returns the full bounds of a texture.
func Bounds(tex Texture) image.Rectangle {
	width, height := tex.Size()
	return image.Rect(0, 0, width, height)
}

// Restricts srcRect to bounds, adjusting dstRect so that the visible
// part of the source still lands where it would have without clipping.
// Both results are empty if nothing is visible.
func ClipSource(bounds, srcRect, dstRect image.Rectangle) (image.Rectangle, image.Rectangle) {
	if srcRect.In(bounds) { return srcRect, dstRect }
	clipped := srcRect.Intersect(bounds)
	if clipped.Empty() { return image.Rectangle{}, image.Rectangle{} }

	srcW, srcH := srcRect.Dx(), srcRect.Dy()
	dstW, dstH := dstRect.Dx(), dstRect.Dy()
	scaled := image.Rectangle{
		Min: image.Pt(
			dstRect.Min.X+(clipped.Min.X-srcRect.Min.X)*dstW/srcW,
			dstRect.Min.Y+(clipped.Min.Y-srcRect.Min.Y)*dstH/srcH,
		),
		Max: image.Pt(
			dstRect.Min.X+(clipped.Max.X-srcRect.Min.X)*dstW/srcW,
			dstRect.Min.Y+(clipped.Max.Y-srcRect.Min.Y)*dstH/srcH,
		),
	}
	return clipped, scaled
}
