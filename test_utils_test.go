package btxt

import "errors"
import "image"
import "image/color"

import "github.com/pggk/btxt/atlas"
import "github.com/pggk/btxt/gfx"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

type fakeTexture struct {
	name          string
	width, height int
	tint          color.RGBA
	destroyed     bool
}

func (self *fakeTexture) Size() (int, int) { return self.width, self.height }

type copyOp struct {
	target, src *fakeTexture
	srcRect     image.Rectangle
	dstRect     image.Rectangle
	tint        color.RGBA
}

// Device recording all the operations it receives.
type fakeDevice struct {
	output     *fakeTexture
	copies     []copyOp
	targets    []*fakeTexture
	destroyed  []*fakeTexture
	clears     int
	failTarget bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{output: &fakeTexture{name: "output", width: 200, height: 100, tint: gfx.White}}
}

func (self *fakeDevice) Output() gfx.Texture { return self.output }

func (self *fakeDevice) NewTarget(width, height int) (gfx.Texture, error) {
	if self.failTarget { return nil, errors.New("out of video memory") }
	target := &fakeTexture{name: "target", width: width, height: height, tint: gfx.White}
	self.targets = append(self.targets, target)
	return target, nil
}

func (self *fakeDevice) Destroy(tex gfx.Texture) {
	texture := tex.(*fakeTexture)
	texture.destroyed = true
	self.destroyed = append(self.destroyed, texture)
}

func (self *fakeDevice) Clear(target gfx.Texture, c color.Color) { self.clears += 1 }

func (self *fakeDevice) SetTint(tex gfx.Texture, c color.RGBA) {
	tex.(*fakeTexture).tint = c
}

func (self *fakeDevice) Copy(target, src gfx.Texture, srcRect, dstRect image.Rectangle) {
	from := src.(*fakeTexture)
	self.copies = append(self.copies, copyOp{
		target: target.(*fakeTexture), src: from,
		srcRect: srcRect, dstRect: dstRect, tint: from.tint,
	})
}

// Returns the copies made from the given source texture.
func (self *fakeDevice) copiesFrom(src gfx.Texture) []copyOp {
	var ops []copyOp
	for _, op := range self.copies {
		if op.src == src { ops = append(ops, op) }
	}
	return ops
}

func (self *fakeDevice) reset() { self.copies = self.copies[:0] }

// 4x1 cells of 32x32, one per character.
func newTestRenderer(chars string) (*Renderer, *fakeDevice) {
	device := newFakeDevice()
	texture := &fakeTexture{name: "atlas", width: 32 * 4, height: 32, tint: gfx.White}
	return NewRenderer(device, atlas.New(texture, chars, 32, 32)), device
}

// Size 32 with default offsets advances 14 pixels per
// character and 22 per line.
var testStyle = DefaultStyle(32)
