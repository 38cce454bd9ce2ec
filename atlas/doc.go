// The atlas subpackage contains the [Atlas] type, which pairs an
// image of pre-rasterized glyphs with the ordered list of characters
// it contains, and the helpers to locate a character's cell in it.
//
// Atlases are grids of fixed-size cells filled left to right and top
// to bottom in the same order as the character list. The atlas image
// and the character list must agree; nothing here can detect when
// they don't.
//
// Atlases are usually loaded from a manifest:
//   {
//     "image": "font.png",
//     "chars": "ABCDEFGHIJKLMNOPQRSTUVWXYZ...",
//     "cell": { "width": 32, "height": 32 }
//   }
package atlas
