package softgfx

import "image"
import "image/color"

// Returns a copy of the given region with the tint applied. The
// copy keeps the region coordinates. Colors are premultiplied, so
// the tint alpha scales all the channels.
func tintRegion(src *image.RGBA, region image.Rectangle, tint color.RGBA) *image.RGBA {
	out := image.NewRGBA(region)
	tr, tg, tb, ta := uint32(tint.R), uint32(tint.G), uint32(tint.B), uint32(tint.A)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		srcIndex := src.PixOffset(region.Min.X, y)
		outIndex := out.PixOffset(region.Min.X, y)
		for x := region.Min.X; x < region.Max.X; x++ {
			a := uint32(src.Pix[srcIndex+3])
			if a != 0 {
				out.Pix[outIndex+0] = uint8(uint32(src.Pix[srcIndex+0]) * tr * ta / (255 * 255))
				out.Pix[outIndex+1] = uint8(uint32(src.Pix[srcIndex+1]) * tg * ta / (255 * 255))
				out.Pix[outIndex+2] = uint8(uint32(src.Pix[srcIndex+2]) * tb * ta / (255 * 255))
				out.Pix[outIndex+3] = uint8(a * ta / 255)
			}
			srcIndex += 4
			outIndex += 4
		}
	}
	return out
}
