package game

import (
	"math"

	"kitchen/internal/kitchen"
)

// Camera maps the kitchen floor to the framebuffer. View space is the floor
// plane with +Z pointing up the screen.
type Camera struct {
	X, Y float64 // view-space camera centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeY float64
	ShakeTimer     float64
	ShakeIntensity float64
}

func NewCamera() Camera {
	return Camera{X: kitchen.KitchenWidth / 2, Y: kitchen.KitchenDepth / 2}
}

// ToView converts a floor position to view space.
func ToView(p kitchen.Vec2) (float64, float64) {
	return p.X, kitchen.KitchenDepth - p.Z
}

// FitZoom returns the zoom that shows the whole kitchen plus margins.
func FitZoom(fbW, fbH int) float64 {
	zx := float64(fbW) / (kitchen.KitchenWidth + 2*ViewMarginX)
	zy := float64(fbH) / (kitchen.KitchenDepth + 2*ViewMarginZ)
	return clampF(math.Min(zx, zy), MinZoom, MaxZoom)
}

// Fit eases the zoom toward FitZoom; the first call snaps.
func (c *Camera) Fit(fbW, fbH int, dt float64) {
	target := FitZoom(fbW, fbH)
	if c.Zoom == 0 {
		c.Zoom = target
		return
	}
	c.Zoom = approach(c.Zoom, target, math.Max(1, math.Abs(target-c.Zoom))*dt*8)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// WorldToScreen projects a floor position to framebuffer pixels.
func (c *Camera) WorldToScreen(p kitchen.Vec2, fbW, fbH int) (int, int) {
	vx, vy := ToView(p)
	cx, cy := c.EffectivePos()
	sx := (vx-cx)*c.Zoom + float64(fbW)*0.5
	sy := (vy-cy)*c.Zoom + float64(fbH)*0.5
	return int(math.Round(sx)), int(math.Round(sy))
}
