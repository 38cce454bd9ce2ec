package btxt

import "image"

import "github.com/pggk/btxt/gfx"

// A combined render cache. Glyphs drawn through a [Renderer] with a
// cache are composited into an offscreen target the size of the output,
// and once the draw completes the cache is marked as finished. Later
// draws with a finished cache just copy the target to the output
// instead of redrawing every glyph.
//
// The zero value is ready to use. The offscreen target is created on
// the first draw that receives the cache, and must be released with
// [Combined.Release]() once the cache is no longer needed.
//
// A cache is not safe for concurrent use, and shouldn't be shared
// between renderers with different devices.
type Combined struct {
	device   gfx.Device
	target   gfx.Texture
	finished bool
}

// Returns whether the cached contents are complete.
func (self *Combined) Finished() bool { return self.finished }

// Marks the cached contents as complete.
func (self *Combined) Finish() { self.finished = true }

// Marks the cache as unfinished and clears the cached contents,
// so the cache can be reused for a different text.
func (self *Combined) Reset() {
	self.finished = false
	if self.target != nil {
		self.device.Clear(self.target, gfx.Transparent)
	}
}

// Returns whether the offscreen target has been created.
func (self *Combined) Allocated() bool { return self.target != nil }

// Returns the offscreen target, or nil if not allocated.
func (self *Combined) Texture() gfx.Texture { return self.target }

// Destroys the offscreen target. Safe to call multiple times.
// The cache can be used again afterwards, starting from scratch.
func (self *Combined) Release() {
	if self.target == nil { return }
	self.device.Destroy(self.target)
	self.device = nil
	self.target = nil
	self.finished = false
}

// ---- helpers ----

func (self *Combined) acquire(device gfx.Device) bool {
	if self.target != nil { return true }
	width, height := device.Output().Size()
	target, err := device.NewTarget(width, height)
	if err != nil {
		Logger().Warn("btxt: render cache allocation failed, drawing uncached",
			"width", width, "height", height, "error", err)
		return false
	}
	device.Clear(target, gfx.Transparent)
	self.device = device
	self.target = target
	Logger().Debug("btxt: render cache allocated", "width", width, "height", height)
	return true
}

// Copies the given region of the cached contents to the same region
// of the output. An empty region copies everything.
func (self *Combined) blit(device gfx.Device, region image.Rectangle) {
	if self.target == nil { return }
	device.Copy(device.Output(), self.target, region, region)
}
