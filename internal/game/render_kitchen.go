//go:build !android

package game

// DrawScene renders a built scene: floor, base quads, glow, item sprites,
// then progress bars on top.
func (r *Renderer) DrawScene(s Scene, cam Camera, fbW, fbH int) {
	r.RestoreQuadProgram(cam, fbW, fbH)
	r.DrawFloor(s.Floor.X, s.Floor.Y, s.Floor.W, s.Floor.H)
	r.drawQuads(s.Base)

	r.DrawGlowSprites(s.Glow, cam, fbW, fbH)
	r.DrawItems(s.Items, cam, fbW, fbH)
	r.DrawBoxSprites(s.Boxes, cam, fbW, fbH)

	r.RestoreQuadProgram(cam, fbW, fbH)
	r.drawQuads(s.Bars)
}

func (r *Renderer) drawQuads(qs []Quad) {
	for _, q := range qs {
		r.DrawQuad(q.X, q.Y, q.W, q.H, q.Rot, q.Col)
	}
}
