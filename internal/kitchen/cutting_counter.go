package kitchen

// CuttingCounter turns cuttable items into their recipe output after enough
// secondary interactions.
type CuttingCounter struct {
	baseCounter
	progress int
}

func NewCuttingCounter(col, row int) *CuttingCounter {
	return &CuttingCounter{baseCounter: newBaseCounter(col, row)}
}

func (c *CuttingCounter) Label() string { return "Cutting Counter" }

// Progress returns the number of cuts applied to the current item.
func (c *CuttingCounter) Progress() int { return c.progress }

func (c *CuttingCounter) Interact(k *Kitchen, p *Player) {
	if !c.HasItem() {
		if !p.HasItem() {
			return
		}
		r, ok := k.Recipes.Find(p.HeldItem().Kind)
		if !ok {
			return
		}
		k.Move(p.HeldItem(), c)
		c.setProgress(k, 0, r.ProgressMax)
		return
	}

	held := c.HeldItem()
	takeOrMerge(k, c, p)
	if c.HeldItem() != held && c.progress != 0 {
		// The item left the board, so any partial cut is void.
		c.setProgress(k, 0, 1)
	}
}

func (c *CuttingCounter) InteractAlternate(k *Kitchen, p *Player) {
	if !c.HasItem() {
		return
	}
	r, ok := k.Recipes.Find(c.HeldItem().Kind)
	if !ok {
		return
	}
	c.progress++
	k.Bus.Emit(Event{Type: EventCut, Counter: c, Item: c.HeldItem()})
	c.setProgress(k, c.progress, r.ProgressMax)

	if c.progress >= r.ProgressMax {
		k.Destroy(c.HeldItem())
		k.Spawn(r.Output, c)
		c.progress = 0
	}
}

func (c *CuttingCounter) setProgress(k *Kitchen, n, progressMax int) {
	c.progress = n
	k.Bus.Emit(Event{
		Type:     EventProgressChanged,
		Counter:  c,
		Progress: float64(n) / float64(progressMax),
	})
}
