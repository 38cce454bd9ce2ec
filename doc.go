// btxt is a package for drawing text with fixed-cell bitmap font
// atlases, designed mainly for 2D games and tools that want retro
// looking text without dealing with vector fonts.
//
// Common usage depends only on a couple types and a few functions...
//
// First, you load an [atlas.Atlas] for a device:
//   device := ebitengfx.New()
//   fontAtlas, err := atlas.Load(device, "path/to/font.json")
//   if err != nil { ... }
//
// Then, you create a [Renderer]:
//   renderer := btxt.NewRenderer(device, fontAtlas)
//
// Finally, you draw with a [Style]:
//   style := btxt.DefaultStyle(32)
//   renderer.Draw("Hello world!", x, y, style, nil)
//
// Text that doesn't change can be drawn through a [Combined] cache,
// and [Typewriter] reveals text progressively, one character per tick.
// Styles can also be loaded from INI files with [LoadSettings]().
package btxt
