package kitchen

// Player movement and reach (world units on the XZ plane).
const (
	PlayerMoveSpeed   = 7.0
	PlayerRotateSpeed = 10.0
	PlayerRadius      = 0.7
	PlayerHeight      = 2.0
	InteractDistance  = 2.0
)

// Kitchen layout.
// Counters are square blocks on a CounterSize grid.
const (
	CounterSize   = 2.0
	KitchenCols   = 9
	KitchenRows   = 6
	KitchenWidth  = KitchenCols * CounterSize // 18
	KitchenDepth  = KitchenRows * CounterSize // 12
	WallThickness = 0.5
)

// Session timing (seconds).
const (
	CountdownToStartTime = 3.0
	DefaultPlayingTime   = 90.0
)

// Settings keys.
const (
	SettingsKeyBindings = "InputBindings"
)
