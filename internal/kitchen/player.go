package kitchen

// Player walks the kitchen floor, carries at most one item and interacts
// with the counter it is facing.
type Player struct {
	Slot
	Pos       Vec2
	Heading   float64 // facing angle on the floor plane, radians
	MoveSpeed float64
	Walking   bool

	lastInteractDir Vec2
	selected        Counter
}

func NewPlayer(pos Vec2) *Player {
	return &Player{
		Pos:       pos,
		Heading:   Vec2{Z: 1}.Angle(),
		MoveSpeed: PlayerMoveSpeed,
	}
}

// Selected returns the counter currently targeted, or nil.
func (p *Player) Selected() Counter { return p.selected }

// Facing returns the unit facing vector.
func (p *Player) Facing() Vec2 { return FromAngle(p.Heading) }

// Update runs one tick of movement followed by targeting.
func (p *Player) Update(k *Kitchen, input Vec2, dt float64) {
	p.handleMovement(k, input.Normalized(), dt)
	p.handleInteractions(k, input.Normalized())
}

func (p *Player) handleMovement(k *Kitchen, moveDir Vec2, dt float64) {
	moveDistance := p.MoveSpeed * dt
	canMove := !k.CapsuleCast(p.Pos, PlayerRadius, moveDir, moveDistance)

	if !canMove {
		// Blocked: try sliding along X, then along Z.
		moveX := Vec2{X: moveDir.X}.Normalized()
		canMove = moveX.X != 0 && !k.CapsuleCast(p.Pos, PlayerRadius, moveX, moveDistance)
		if canMove {
			moveDir = moveX
		} else {
			moveZ := Vec2{Z: moveDir.Z}.Normalized()
			canMove = moveZ.Z != 0 && !k.CapsuleCast(p.Pos, PlayerRadius, moveZ, moveDistance)
			if canMove {
				moveDir = moveZ
			}
		}
	}

	if canMove {
		p.Pos = p.Pos.Add(moveDir.Scale(moveDistance))
	}
	p.Walking = !moveDir.IsZero()

	if !moveDir.IsZero() {
		t := clampF(dt*PlayerRotateSpeed, 0, 1)
		p.Heading += angDiff(p.Heading, moveDir.Angle()) * t
	}
}

func (p *Player) handleInteractions(k *Kitchen, moveDir Vec2) {
	if !moveDir.IsZero() {
		p.lastInteractDir = moveDir
	}

	var target Counter
	if hit, ok := k.Raycast(p.Pos, p.lastInteractDir, InteractDistance, LayerCounters); ok {
		target = hit.Collider.Counter
	}
	if target != p.selected {
		p.selected = target
		k.Bus.Emit(Event{Type: EventSelectedCounterChanged, Counter: target})
	}
}

// Interact forwards the primary action to the selected counter while the
// round is being played.
func (p *Player) Interact(k *Kitchen) {
	if !k.Session.IsPlaying() || p.selected == nil {
		return
	}
	p.selected.Interact(k, p)
}

// InteractAlternate forwards the secondary action.
func (p *Player) InteractAlternate(k *Kitchen) {
	if !k.Session.IsPlaying() || p.selected == nil {
		return
	}
	p.selected.InteractAlternate(k, p)
}
