//go:build !android

package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawItems renders round item sprites.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawItems(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.itemProg, r.itemUCamera, r.itemUZoom, r.itemUResolution, buf, cam, fbW, fbH, false)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.glowProg, r.glowUCamera, r.glowUZoom, r.glowUResolution, buf, cam, fbW, fbH, true)
}

// DrawBoxSprites renders bevelled square icons.
func (r *Renderer) DrawBoxSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.boxProg, r.boxUCamera, r.boxUZoom, r.boxUResolution, buf, cam, fbW, fbH, false)
}

func (r *Renderer) drawPoints(prog uint32, uCam, uZoom, uRes int32, buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	cx, cy := cam.EffectivePos()
	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(uCam, float32(cx), float32(cy))
	gl.Uniform1f(uZoom, float32(cam.Zoom))
	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
