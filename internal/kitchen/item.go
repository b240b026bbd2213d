package kitchen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUnknownItemKind = errors.New("unknown item kind")

// ItemKind identifies an item type.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemTomato
	ItemTomatoSlices
	ItemCheeseBlock
	ItemCheeseSlices
	ItemCabbage
	ItemCabbageSlices
	ItemBread
	ItemMeatPattyUncooked
	ItemPlate
)

// ItemType is the immutable descriptor behind every item of a kind.
type ItemType struct {
	Name   string // stable identifier, used in recipe files
	Label  string
	Sprite string
}

// ItemTypes is the authored item table.
var ItemTypes = map[ItemKind]ItemType{
	ItemTomato:            {Name: "tomato", Label: "Tomato", Sprite: "tomato"},
	ItemTomatoSlices:      {Name: "tomato_slices", Label: "Tomato Slices", Sprite: "tomato_slices"},
	ItemCheeseBlock:       {Name: "cheese_block", Label: "Cheese Block", Sprite: "cheese_block"},
	ItemCheeseSlices:      {Name: "cheese_slices", Label: "Cheese Slices", Sprite: "cheese_slices"},
	ItemCabbage:           {Name: "cabbage", Label: "Cabbage", Sprite: "cabbage"},
	ItemCabbageSlices:     {Name: "cabbage_slices", Label: "Cabbage Slices", Sprite: "cabbage_slices"},
	ItemBread:             {Name: "bread", Label: "Bread", Sprite: "bread"},
	ItemMeatPattyUncooked: {Name: "meat_patty_uncooked", Label: "Uncooked Meat Patty", Sprite: "meat_patty_uncooked"},
	ItemPlate:             {Name: "plate", Label: "Plate", Sprite: "plate"},
}

func (k ItemKind) Type() ItemType { return ItemTypes[k] }

func (k ItemKind) String() string {
	if t, ok := ItemTypes[k]; ok {
		return t.Name
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// ParseItemKind resolves an item by its stable name.
func ParseItemKind(name string) (ItemKind, error) {
	for k, t := range ItemTypes {
		if t.Name == name {
			return k, nil
		}
	}
	return ItemNone, fmt.Errorf("%w: %q", ErrUnknownItemKind, name)
}

// Item is a live instance of an item type. It is owned by at most one
// Holder at a time; ownership only changes through Kitchen.
type Item struct {
	ID     uuid.UUID
	Kind   ItemKind
	holder Holder
	plate  *Plate
}

func (it *Item) Holder() Holder { return it.holder }

// TryGetPlate reports whether the item is a plate.
func (it *Item) TryGetPlate() (*Plate, bool) {
	if it == nil || it.plate == nil {
		return nil, false
	}
	return it.plate, true
}

// Holder is anything that can hold a single item: the player or a counter.
type Holder interface {
	HeldItem() *Item
	HasItem() bool
	slot() *Slot
}

// Slot is the zero-or-one item relation embedded by holders.
type Slot struct {
	item *Item
}

func (s *Slot) HeldItem() *Item { return s.item }
func (s *Slot) HasItem() bool   { return s.item != nil }
func (s *Slot) slot() *Slot     { return s }
