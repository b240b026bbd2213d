package game

import (
	"math"

	"kitchen/internal/kitchen"
)

// Quad is a flat rectangle in view space. X, Y is the top-left corner;
// Rot turns it about its centre.
type Quad struct {
	X, Y, W, H float64
	Rot        float64
	Col        RGB
}

// Scene is one frame of draw data in view space, grouped by layer.
type Scene struct {
	Floor Quad
	Base  []Quad    // walls, counters, player
	Glow  []float32 // selection light
	Items []float32 // whole ingredients and plates
	Boxes []float32 // sliced ingredients and plate icons
	Bars  []Quad    // progress bars, drawn last
}

func rectQuad(r kitchen.RectF, col RGB) Quad {
	x, y := ToView(kitchen.Vec2{X: r.X0, Z: r.Z1})
	return Quad{X: x, Y: y, W: r.X1 - r.X0, H: r.Z1 - r.Z0, Col: col}
}

func centredQuad(p kitchen.Vec2, w, h, rot float64, col RGB) Quad {
	x, y := ToView(p)
	return Quad{X: x - w/2, Y: y - h/2, W: w, H: h, Rot: rot, Col: col}
}

// appendSprite adds one 8-float point sprite.
func appendSprite(buf []float32, p kitchen.Vec2, size float64, col RGB, alpha, rot float32) []float32 {
	x, y := ToView(p)
	r, g, b := col.Floats()
	return append(buf, float32(x), float32(y), float32(size), r, g, b, alpha, rot)
}

// viewAngle converts a floor heading to a view-space rotation.
func viewAngle(heading float64) float64 { return -heading }

// isSliced reports whether kind is the output of a cutting recipe.
func isSliced(book kitchen.RecipeBook, kind kitchen.ItemKind) bool {
	for _, r := range book {
		if r.Output == kind {
			return true
		}
	}
	return false
}

// BuildScene collects the draw data for the kitchen. t is wall-clock time
// in seconds and only drives the selection pulse.
func BuildScene(k *kitchen.Kitchen, hud *kitchen.HUD, t float64) Scene {
	s := Scene{
		Floor: Quad{W: kitchen.KitchenWidth, H: kitchen.KitchenDepth, Col: Palette.FloorA},
	}

	for _, w := range k.Walls() {
		s.Base = append(s.Base, rectQuad(w, Palette.Wall))
	}

	selected := k.Player.Selected()
	for _, c := range k.Counters {
		b := c.Bounds()
		if c == selected {
			s.Base = append(s.Base, rectQuad(b.Inflate(SelectionBorder), Palette.Selected))
			pulse := 0.3 + 0.1*math.Sin(t*4)
			s.Glow = appendSprite(s.Glow, b.Center(), kitchen.CounterSize*1.8,
				Palette.Selected, float32(pulse), 0)
		}
		s.Base = append(s.Base, rectQuad(b, Palette.CounterSide))
		s.Base = append(s.Base, rectQuad(b.Inflate(-0.12), CounterColor(c)))
		if _, ok := c.(*kitchen.TrashCounter); ok {
			s.Base = append(s.Base, rectQuad(b.Inflate(-0.45), Palette.Trash.Mul(150)))
		}
		if c.HasItem() {
			s.addItem(k.Recipes, c.HeldItem(), b.Center())
		}
	}

	p := k.Player
	rot := viewAngle(p.Heading)
	d := kitchen.PlayerRadius * 2
	s.Base = append(s.Base, centredQuad(p.Pos, d, d, rot, Palette.Player))
	face := p.Pos.Add(p.Facing().Scale(kitchen.PlayerRadius * 0.65))
	s.Base = append(s.Base, centredQuad(face, 0.3, 0.3, rot, Palette.PlayerFace))
	if p.HasItem() {
		s.addItem(k.Recipes, p.HeldItem(), p.Pos.Add(p.Facing().Scale(kitchen.PlayerRadius+0.2)))
	}

	if hud != nil {
		for _, bar := range hud.ProgressBars() {
			b := bar.Counter.Bounds()
			anchor := kitchen.Vec2{X: b.Center().X, Z: b.Z1 + ProgressBarH}
			back := centredQuad(anchor, ProgressBarW, ProgressBarH, 0, Palette.BarBack)
			fill := back
			fill.W = back.W * clampF(bar.Progress, 0, 1)
			fill.Col = Palette.BarFill
			s.Bars = append(s.Bars, back, fill)
		}
	}
	return s
}

func (s *Scene) addItem(book kitchen.RecipeBook, it *kitchen.Item, at kitchen.Vec2) {
	col := ItemColor(it.Kind)
	if isSliced(book, it.Kind) {
		s.Boxes = appendSprite(s.Boxes, at, ItemSize*0.8, col, 1, 0.3)
	} else {
		s.Items = appendSprite(s.Items, at, ItemSize, col, 1, 0)
	}

	plate, ok := it.TryGetPlate()
	if !ok {
		return
	}
	ingredients := plate.Ingredients()
	n := float64(len(ingredients))
	for i, kind := range ingredients {
		off := (float64(i) - (n-1)/2) * PlateIconSize
		icon := at.Add(kitchen.Vec2{X: off, Z: ItemSize * 0.55})
		s.Boxes = appendSprite(s.Boxes, icon, PlateIconSize, ItemColor(kind), 1, 0)
	}
}
