// Package kitchen holds the game-state core of the cooking game: items and
// their holders, recipes, counters, the player, the round session and the
// input binding layer. It has no engine dependencies; the desktop shell in
// internal/game drives it once per frame and renders what it exposes.
package kitchen

import (
	"github.com/google/uuid"
)

// Options configures a new kitchen. Zero values pick the defaults.
type Options struct {
	Recipes     RecipeBook
	PlayingTime float64
	MoveSpeed   float64
}

// Kitchen owns every counter, the player and all live items.
type Kitchen struct {
	Bus      *EventBus
	Session  *GameSession
	Recipes  RecipeBook
	Player   *Player
	Counters []Counter

	colliders []Collider
	items     map[uuid.UUID]*Item
}

// New returns a walled, empty kitchen with the player in the middle.
func New(bus *EventBus, opts Options) *Kitchen {
	if opts.Recipes == nil {
		opts.Recipes = DefaultCuttingRecipes
	}
	k := &Kitchen{
		Bus:     bus,
		Session: NewGameSession(bus, opts.PlayingTime),
		Recipes: opts.Recipes,
		Player:  NewPlayer(PlayerSpawn()),
		items:   make(map[uuid.UUID]*Item),
	}
	if opts.MoveSpeed > 0 {
		k.Player.MoveSpeed = opts.MoveSpeed
	}
	w := WallThickness
	k.AddWall(RectF{X0: -w, Z0: -w, X1: KitchenWidth + w, Z1: 0})
	k.AddWall(RectF{X0: -w, Z0: KitchenDepth, X1: KitchenWidth + w, Z1: KitchenDepth + w})
	k.AddWall(RectF{X0: -w, Z0: 0, X1: 0, Z1: KitchenDepth})
	k.AddWall(RectF{X0: KitchenWidth, Z0: 0, X1: KitchenWidth + w, Z1: KitchenDepth})
	return k
}

// NewDefault returns a kitchen furnished with the standard layout.
func NewDefault(bus *EventBus, opts Options) *Kitchen {
	k := New(bus, opts)
	for _, c := range DefaultLayout() {
		k.AddCounter(c)
	}
	return k
}

// DefaultLayout is the standard counter arrangement: ingredient crates and
// worktops along the back wall, cutting boards and the bin at the front.
func DefaultLayout() []Counter {
	return []Counter{
		NewContainerCounter(1, 0, ItemTomato),
		NewContainerCounter(2, 0, ItemCheeseBlock),
		NewContainerCounter(3, 0, ItemCabbage),
		NewContainerCounter(4, 0, ItemBread),
		NewContainerCounter(5, 0, ItemPlate),
		NewClearCounter(6, 0),
		NewClearCounter(7, 0),
		NewClearCounter(0, 2),
		NewClearCounter(0, 3),
		NewCuttingCounter(2, 5),
		NewCuttingCounter(3, 5),
		NewClearCounter(4, 5),
		NewTrashCounter(7, 5),
	}
}

// PlayerSpawn is the centre of the floor.
func PlayerSpawn() Vec2 {
	return Vec2{X: KitchenWidth / 2, Z: KitchenDepth / 2}
}

func (k *Kitchen) AddWall(r RectF) {
	k.colliders = append(k.colliders, Collider{Bounds: r, Layer: LayerWalls})
}

func (k *Kitchen) AddCounter(c Counter) {
	k.Counters = append(k.Counters, c)
	k.colliders = append(k.colliders, Collider{Bounds: c.Bounds(), Layer: LayerCounters, Counter: c})
}

// Spawn instantiates a new item of kind on h. It returns nil when h is
// already holding something.
func (k *Kitchen) Spawn(kind ItemKind, h Holder) *Item {
	if h.HasItem() {
		return nil
	}
	it := &Item{ID: uuid.New(), Kind: kind}
	if kind == ItemPlate {
		it.plate = NewPlate(PlateIngredients)
	}
	k.items[it.ID] = it
	k.Move(it, h)
	return it
}

// Move hands it to another holder: the previous holder's slot is cleared
// and the new one set. Moving onto an occupied holder is a no-op.
func (k *Kitchen) Move(it *Item, to Holder) bool {
	if it == nil || to.HasItem() {
		return false
	}
	if it.holder != nil {
		it.holder.slot().item = nil
	}
	to.slot().item = it
	it.holder = to
	if _, ok := to.(*Player); ok {
		k.Bus.Emit(Event{Type: EventPickedSomething, Item: it, Kind: it.Kind})
	} else if c, ok := to.(Counter); ok {
		k.Bus.Emit(Event{Type: EventItemDropped, Counter: c, Item: it, Kind: it.Kind})
	}
	return true
}

// Destroy removes it from its holder and from the kitchen.
func (k *Kitchen) Destroy(it *Item) {
	if it == nil {
		return
	}
	if it.holder != nil {
		it.holder.slot().item = nil
		it.holder = nil
	}
	delete(k.items, it.ID)
}

// Items returns every live item.
func (k *Kitchen) Items() []*Item {
	out := make([]*Item, 0, len(k.items))
	for _, it := range k.items {
		out = append(out, it)
	}
	return out
}

// Update advances one frame: the round timer, then player movement and
// targeting. move is the raw movement input.
func (k *Kitchen) Update(dt float64, move Vec2) {
	k.Session.Update(dt)
	if k.Session.Paused {
		return
	}
	k.Player.Update(k, move, dt)
}

// Interact handles the primary action: it starts a waiting round, restarts
// a finished one, and otherwise forwards to the player.
func (k *Kitchen) Interact() {
	switch k.Session.State {
	case StateWaitingToStart:
		if !k.Session.Paused {
			k.Session.Start()
		}
	case StateGameOver:
		if !k.Session.Paused {
			k.Reset()
		}
	default:
		k.Player.Interact(k)
	}
}

func (k *Kitchen) InteractAlternate() {
	k.Player.InteractAlternate(k)
}

func (k *Kitchen) TogglePause() {
	k.Session.TogglePause()
}

// Reset clears all items and returns a finished round to the waiting state.
func (k *Kitchen) Reset() {
	for _, it := range k.Items() {
		k.Destroy(it)
	}
	for _, c := range k.Counters {
		if cc, ok := c.(*CuttingCounter); ok {
			cc.progress = 0
		}
	}
	k.Player.Pos = PlayerSpawn()
	k.Session.Restart()
}

// Walls returns the bounds of every wall collider.
func (k *Kitchen) Walls() []RectF {
	var walls []RectF
	for _, c := range k.colliders {
		if c.Layer&LayerWalls != 0 {
			walls = append(walls, c.Bounds)
		}
	}
	return walls
}
