package kitchen

import "slices"

// PlateIngredients are the kinds a plate accepts by default.
var PlateIngredients = []ItemKind{
	ItemBread,
	ItemTomatoSlices,
	ItemCheeseSlices,
	ItemCabbageSlices,
}

// Plate is the container state carried by a plate item.
type Plate struct {
	valid       []ItemKind
	ingredients []ItemKind
}

func NewPlate(valid []ItemKind) *Plate {
	return &Plate{valid: slices.Clone(valid)}
}

func (p *Plate) Accepts(kind ItemKind) bool { return slices.Contains(p.valid, kind) }
func (p *Plate) Has(kind ItemKind) bool     { return slices.Contains(p.ingredients, kind) }

// Ingredients returns the kinds on the plate in the order they were added.
func (p *Plate) Ingredients() []ItemKind { return slices.Clone(p.ingredients) }

func (p *Plate) tryAdd(kind ItemKind) bool {
	if !p.Accepts(kind) || p.Has(kind) {
		return false
	}
	p.ingredients = append(p.ingredients, kind)
	return true
}

// TryAddIngredient merges kind into the plate carried by plateItem. Kinds
// outside the allow-list and kinds already present are rejected.
func (k *Kitchen) TryAddIngredient(plateItem *Item, kind ItemKind) bool {
	plate, ok := plateItem.TryGetPlate()
	if !ok || !plate.tryAdd(kind) {
		return false
	}
	k.Bus.Emit(Event{Type: EventIngredientAdded, Item: plateItem, Kind: kind})
	k.Bus.Emit(Event{Type: EventAnyPickedSomething, Item: plateItem, Kind: kind})
	return true
}

// PlateIcons returns the sprite ids of a plate's ingredients.
func PlateIcons(it *Item) []string {
	plate, ok := it.TryGetPlate()
	if !ok {
		return nil
	}
	icons := make([]string, 0, len(plate.ingredients))
	for _, kind := range plate.ingredients {
		icons = append(icons, kind.Type().Sprite)
	}
	return icons
}
