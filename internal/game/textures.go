package game

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FloorTexturePx is the edge length of the floor texture. It covers a 2x2
// block of tiles and is drawn with GL_REPEAT.
const FloorTexturePx = 32

// FloorPixels builds the RGBA floor texture: a two-tone checker with a
// little per-pixel grain so large floors do not look flat.
func FloorPixels(seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FloorTexturePx, FloorTexturePx))
	half := FloorTexturePx / 2
	for y := 0; y < FloorTexturePx; y++ {
		for x := 0; x < FloorTexturePx; x++ {
			base := Palette.FloorA
			if (x/half+y/half)%2 == 1 {
				base = Palette.FloorB
			}
			grain := uint8(235 + hash2D(seed, x, y)%21)
			// Grout lines on tile edges.
			if x%half == 0 || y%half == 0 {
				grain = 200
			}
			c := base.Mul(grain)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// FontAtlas rasterises printable ASCII from the basicfont 7x13 face into
// a FontCols x FontRows grid of white glyphs on a transparent background.
func FontAtlas() *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{
		Dst:  atlas,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for ch := FontFirstChar; ch < FontFirstChar+FontCols*FontRows; ch++ {
		i := ch - FontFirstChar
		col, row := i%FontCols, i/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+FontAscent)
		d.DrawString(string(rune(ch)))
	}
	return atlas
}

// GlyphCell returns the atlas cell of ch, or false for characters the
// atlas does not hold.
func GlyphCell(ch rune) (col, row int, ok bool) {
	i := int(ch) - FontFirstChar
	if i < 0 || i >= FontCols*FontRows {
		return 0, 0, false
	}
	return i % FontCols, i / FontCols, true
}

// solidPixels is a 1x1 white texture used to draw flat-coloured quads.
func solidPixels() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
