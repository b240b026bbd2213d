package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Kitchen"
)

// Camera fit: the kitchen plus a margin for the HUD bands.
const (
	ViewMarginX = 1.0 // world units either side
	ViewMarginZ = 3.0 // world units above and below
	MinZoom     = 8.0
	MaxZoom     = 160.0
)

// Sprite batches (8 floats per sprite).
const MaxSpriteRender = 4096

// Visual sizes in world units.
const (
	ItemSize        = 0.9
	PlateIconSize   = 0.45
	ProgressBarW    = 1.6
	ProgressBarH    = 0.22
	SelectionBorder = 0.12
	FloorTileSize   = 1.0
)

// Font atlas layout (basicfont 7x13: printable ASCII 32..127, 32 per row).
const (
	FontFirstChar = 32
	FontCellW     = 7
	FontCellH     = 13
	FontAscent    = 11
	FontCols      = 32
	FontRows      = 3
	FontAtlasW    = FontCellW * FontCols // 224
	FontAtlasH    = FontCellH * FontRows // 39
)

// Screen shake on cuts.
const (
	CutShakeIntensity = 0.06
	CutShakeDuration  = 0.08
)

// Gamepad stick deflection below this is ignored.
const StickDeadzone = 0.2
