package kitchen

// Counter is a stationary interaction point holding at most one item.
type Counter interface {
	Holder
	Bounds() RectF
	Label() string
	Interact(k *Kitchen, p *Player)
	InteractAlternate(k *Kitchen, p *Player)
}

type baseCounter struct {
	Slot
	bounds RectF
}

func newBaseCounter(col, row int) baseCounter {
	return baseCounter{bounds: RectAt(float64(col)*CounterSize, float64(row)*CounterSize, CounterSize)}
}

func (c *baseCounter) Bounds() RectF { return c.bounds }

func (c *baseCounter) InteractAlternate(k *Kitchen, p *Player) {}

// takeOrMerge handles a counter that already holds an item: an empty-handed
// player takes it, a player carrying a plate absorbs it.
func takeOrMerge(k *Kitchen, c Counter, p *Player) {
	held := c.HeldItem()
	if !p.HasItem() {
		k.Move(held, p)
		return
	}
	if _, ok := p.HeldItem().TryGetPlate(); ok {
		if k.TryAddIngredient(p.HeldItem(), held.Kind) {
			k.Destroy(held)
		}
	}
}

// ClearCounter is a plain worktop.
type ClearCounter struct {
	baseCounter
}

func NewClearCounter(col, row int) *ClearCounter {
	return &ClearCounter{baseCounter: newBaseCounter(col, row)}
}

func (c *ClearCounter) Label() string { return "Clear Counter" }

func (c *ClearCounter) Interact(k *Kitchen, p *Player) {
	if !c.HasItem() {
		if p.HasItem() {
			k.Move(p.HeldItem(), c)
		}
		return
	}
	if p.HasItem() {
		// A plate on the counter can take the ingredient the player holds.
		if _, ok := c.HeldItem().TryGetPlate(); ok {
			if k.TryAddIngredient(c.HeldItem(), p.HeldItem().Kind) {
				k.Destroy(p.HeldItem())
			}
			return
		}
	}
	takeOrMerge(k, c, p)
}

// ContainerCounter hands out fresh items of one kind.
type ContainerCounter struct {
	baseCounter
	Kind ItemKind
}

func NewContainerCounter(col, row int, kind ItemKind) *ContainerCounter {
	return &ContainerCounter{baseCounter: newBaseCounter(col, row), Kind: kind}
}

func (c *ContainerCounter) Label() string { return c.Kind.Type().Label + " Crate" }

func (c *ContainerCounter) Interact(k *Kitchen, p *Player) {
	if p.HasItem() {
		return
	}
	k.Spawn(c.Kind, p)
	k.Bus.Emit(Event{Type: EventContainerOpened, Counter: c, Kind: c.Kind})
}

// TrashCounter destroys whatever the player drops into it.
type TrashCounter struct {
	baseCounter
}

func NewTrashCounter(col, row int) *TrashCounter {
	return &TrashCounter{baseCounter: newBaseCounter(col, row)}
}

func (c *TrashCounter) Label() string { return "Trash" }

func (c *TrashCounter) Interact(k *Kitchen, p *Player) {
	if !p.HasItem() {
		return
	}
	it := p.HeldItem()
	k.Destroy(it)
	k.Bus.Emit(Event{Type: EventTrashed, Counter: c, Item: it, Kind: it.Kind})
}
