package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorPixelsDeterministic(t *testing.T) {
	a := FloorPixels(42)
	b := FloorPixels(42)
	require.Equal(t, FloorTexturePx, a.Bounds().Dx())
	assert.Equal(t, a.Pix, b.Pix)

	for i := 3; i < len(a.Pix); i += 4 {
		require.Equal(t, uint8(255), a.Pix[i], "floor is opaque")
	}
}

func TestFontAtlasHasGlyphs(t *testing.T) {
	atlas := FontAtlas()
	require.Equal(t, FontAtlasW, atlas.Bounds().Dx())
	require.Equal(t, FontAtlasH, atlas.Bounds().Dy())

	cellInk := func(ch rune) int {
		col, row, ok := GlyphCell(ch)
		require.True(t, ok)
		ink := 0
		for y := row * FontCellH; y < (row+1)*FontCellH; y++ {
			for x := col * FontCellW; x < (col+1)*FontCellW; x++ {
				if atlas.NRGBAAt(x, y).A > 0 {
					ink++
				}
			}
		}
		return ink
	}
	assert.Zero(t, cellInk(' '))
	assert.Positive(t, cellInk('A'))
	assert.Positive(t, cellInk('~'))
}

func TestGlyphCell(t *testing.T) {
	col, row, ok := GlyphCell('A')
	require.True(t, ok)
	assert.Equal(t, int('A'-FontFirstChar)%FontCols, col)
	assert.Equal(t, int('A'-FontFirstChar)/FontCols, row)

	_, _, ok = GlyphCell('\t')
	assert.False(t, ok)
	_, _, ok = GlyphCell('é')
	assert.False(t, ok)
}

func TestSolidPixelsIsWhite(t *testing.T) {
	assert.Equal(t, []uint8{255, 255, 255, 255}, solidPixels().Pix)
}
