package game

import "kitchen/internal/kitchen"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background  RGB
	FloorA      RGB
	FloorB      RGB
	Wall        RGB
	CounterTop  RGB
	CounterSide RGB
	Container   RGB
	CuttingTop  RGB
	Trash       RGB
	Player      RGB
	PlayerFace  RGB
	Selected    RGB
	BarBack     RGB
	BarFill     RGB
	Text        RGB
	TextDim     RGB
	TextWarn    RGB
	TextGood    RGB
}{
	Background:  RGB{R: 28, G: 30, B: 36},
	FloorA:      RGB{R: 206, G: 198, B: 180},
	FloorB:      RGB{R: 186, G: 176, B: 158},
	Wall:        RGB{R: 86, G: 89, B: 96},
	CounterTop:  RGB{R: 214, G: 190, B: 153},
	CounterSide: RGB{R: 153, G: 124, B: 92},
	Container:   RGB{R: 140, G: 110, B: 70},
	CuttingTop:  RGB{R: 232, G: 212, B: 170},
	Trash:       RGB{R: 70, G: 80, B: 78},
	Player:      RGB{R: 60, G: 140, B: 255},
	PlayerFace:  RGB{R: 255, G: 255, B: 255},
	Selected:    RGB{R: 255, G: 210, B: 110},
	BarBack:     RGB{R: 40, G: 40, B: 40},
	BarFill:     RGB{R: 255, G: 150, B: 70},
	Text:        RGB{R: 255, G: 255, B: 255},
	TextDim:     RGB{R: 170, G: 170, B: 170},
	TextWarn:    RGB{R: 255, G: 80, B: 80},
	TextGood:    RGB{R: 100, G: 255, B: 100},
}

// ItemColors maps each item kind to its sprite colour.
var ItemColors = map[kitchen.ItemKind]RGB{
	kitchen.ItemTomato:            {R: 220, G: 40, B: 30},
	kitchen.ItemTomatoSlices:      {R: 250, G: 100, B: 80},
	kitchen.ItemCheeseBlock:       {R: 245, G: 200, B: 40},
	kitchen.ItemCheeseSlices:      {R: 255, G: 230, B: 110},
	kitchen.ItemCabbage:           {R: 70, G: 160, B: 60},
	kitchen.ItemCabbageSlices:     {R: 140, G: 210, B: 110},
	kitchen.ItemBread:             {R: 200, G: 140, B: 70},
	kitchen.ItemMeatPattyUncooked: {R: 200, G: 90, B: 110},
	kitchen.ItemPlate:             {R: 240, G: 240, B: 245},
}

// ItemColor returns the colour of kind, or magenta for unknown kinds.
func ItemColor(kind kitchen.ItemKind) RGB {
	if c, ok := ItemColors[kind]; ok {
		return c
	}
	return RGB{R: 255, G: 0, B: 255}
}

// CounterColor returns the top colour for a counter.
func CounterColor(c kitchen.Counter) RGB {
	switch cc := c.(type) {
	case *kitchen.ContainerCounter:
		return lerpRGB(Palette.Container, ItemColor(cc.Kind), 0.35)
	case *kitchen.CuttingCounter:
		return Palette.CuttingTop
	case *kitchen.TrashCounter:
		return Palette.Trash
	}
	return Palette.CounterTop
}
