//go:build !android

package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Quad program: floor, walls, counters, player, bars.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	uOrigin     int32
	uSize       int32
	uRotation   int32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uUVScale    int32
	uTint       int32
	uTex        int32

	solidTex uint32
	floorTex uint32

	// Item (round point sprite) program.
	itemProg  uint32
	spriteVAO uint32
	spriteVBO uint32

	itemUCamera     int32
	itemUZoom       int32
	itemUResolution int32

	// Glow program, additive; shares spriteVAO.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Box program for plate icons; shares spriteVAO.
	boxProg        uint32
	boxUCamera     int32
	boxUZoom       int32
	boxUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	itemProg, err := linkProgram(spriteVertSrc, itemFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("item program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		gl.DeleteProgram(itemProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	boxProg, err := linkProgram(spriteVertSrc, boxFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		gl.DeleteProgram(itemProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("box program: %w", err)
	}

	r := &Renderer{
		quadProg: quadProg,
		itemProg: itemProg,
		glowProg: glowProg,
		boxProg:  boxProg,
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.uOrigin = gl.GetUniformLocation(quadProg, gl.Str("uOrigin\x00"))
	r.uSize = gl.GetUniformLocation(quadProg, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(quadProg, gl.Str("uRotation\x00"))
	r.uCamera = gl.GetUniformLocation(quadProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(quadProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.uUVScale = gl.GetUniformLocation(quadProg, gl.Str("uUVScale\x00"))
	r.uTint = gl.GetUniformLocation(quadProg, gl.Str("uTint\x00"))
	r.uTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	r.solidTex = uploadTexture(solidPixels(), gl.CLAMP_TO_EDGE)
	r.floorTex = uploadTexture(FloorPixels(0x5EED), gl.REPEAT)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(itemProg)
	r.itemUCamera = gl.GetUniformLocation(itemProg, gl.Str("uCamera\x00"))
	r.itemUZoom = gl.GetUniformLocation(itemProg, gl.Str("uZoom\x00"))
	r.itemUResolution = gl.GetUniformLocation(itemProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.UseProgram(boxProg)
	r.boxUCamera = gl.GetUniformLocation(boxProg, gl.Str("uCamera\x00"))
	r.boxUZoom = gl.GetUniformLocation(boxProg, gl.Str("uZoom\x00"))
	r.boxUResolution = gl.GetUniformLocation(boxProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func uploadTexture(img *image.NRGBA, wrap int32) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.itemProg, r.glowProg, r.boxProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.solidTex, r.floorTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.RestoreQuadProgram(cam, fbW, fbH)
}

// RestoreQuadProgram makes the quad program current with the frame camera.
func (r *Renderer) RestoreQuadProgram(cam Camera, fbW, fbH int) {
	cx, cy := cam.EffectivePos()
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform2f(r.uCamera, float32(cx), float32(cy))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawQuad fills a view-space rectangle (x, y is the top-left corner)
// rotated by rot radians about its centre.
func (r *Renderer) DrawQuad(x, y, w, h, rot float64, col RGB) {
	cr, cg, cb := col.Floats()
	gl.BindTexture(gl.TEXTURE_2D, r.solidTex)
	gl.Uniform2f(r.uOrigin, float32(x), float32(y))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, float32(rot))
	gl.Uniform2f(r.uUVScale, 1, 1)
	gl.Uniform3f(r.uTint, cr, cg, cb)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawFloor tiles the floor texture over a view-space rectangle.
func (r *Renderer) DrawFloor(x, y, w, h float64) {
	gl.BindTexture(gl.TEXTURE_2D, r.floorTex)
	gl.Uniform2f(r.uOrigin, float32(x), float32(y))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, 0)
	gl.Uniform2f(r.uUVScale, float32(w/(2*FloorTileSize)), float32(h/(2*FloorTileSize)))
	gl.Uniform3f(r.uTint, 1, 1, 1)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
