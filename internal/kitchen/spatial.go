package kitchen

import "math"

// RectF is an axis-aligned rectangle on the floor plane.
type RectF struct {
	X0, Z0 float64
	X1, Z1 float64
}

// RectAt returns a size×size rectangle whose minimum corner is at (x, z).
func RectAt(x, z, size float64) RectF {
	return RectF{X0: x, Z0: z, X1: x + size, Z1: z + size}
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Z0 < o.Z1 && r.Z1 > o.Z0
}

func (r RectF) ContainsPoint(p Vec2) bool {
	return p.X > r.X0 && p.X < r.X1 && p.Z > r.Z0 && p.Z < r.Z1
}

func (r RectF) Center() Vec2 {
	return Vec2{X: (r.X0 + r.X1) * 0.5, Z: (r.Z0 + r.Z1) * 0.5}
}

// Inflate grows the rectangle by d on every side.
func (r RectF) Inflate(d float64) RectF {
	return RectF{X0: r.X0 - d, Z0: r.Z0 - d, X1: r.X1 + d, Z1: r.Z1 + d}
}

// rayEnter returns the distance along dir (unit length) at which a ray from
// origin enters r. Rays starting inside r never hit it.
func (r RectF) rayEnter(origin, dir Vec2, maxDist float64) (float64, bool) {
	if r.ContainsPoint(origin) {
		return 0, false
	}
	tmin, tmax := 0.0, maxDist
	if !slab(origin.X, dir.X, r.X0, r.X1, &tmin, &tmax) {
		return 0, false
	}
	if !slab(origin.Z, dir.Z, r.Z0, r.Z1, &tmin, &tmax) {
		return 0, false
	}
	return tmin, true
}

func slab(o, d, lo, hi float64, tmin, tmax *float64) bool {
	if d == 0 {
		return o > lo && o < hi
	}
	t0 := (lo - o) / d
	t1 := (hi - o) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	*tmin = math.Max(*tmin, t0)
	*tmax = math.Min(*tmax, t1)
	return *tmin < *tmax
}

// Layer is a collision layer bit.
type Layer uint8

const (
	LayerWalls Layer = 1 << iota
	LayerCounters

	LayerAll = LayerWalls | LayerCounters
)

// Collider is a static obstacle. Counter is nil for plain geometry.
type Collider struct {
	Bounds  RectF
	Layer   Layer
	Counter Counter
}

// Hit describes the closest collider struck by a cast.
type Hit struct {
	Collider *Collider
	Distance float64
}

// Raycast returns the nearest collider on mask hit by a ray of length
// maxDist. dir need not be normalized; a zero dir never hits.
func (k *Kitchen) Raycast(origin, dir Vec2, maxDist float64, mask Layer) (Hit, bool) {
	dir = dir.Normalized()
	if dir.IsZero() {
		return Hit{}, false
	}
	best := Hit{Distance: math.Inf(1)}
	for i := range k.colliders {
		c := &k.colliders[i]
		if c.Layer&mask == 0 {
			continue
		}
		if t, ok := c.Bounds.rayEnter(origin, dir, maxDist); ok && t < best.Distance {
			best = Hit{Collider: c, Distance: t}
		}
	}
	return best, best.Collider != nil
}

// CapsuleCast sweeps an upright capsule of the given radius from origin
// along dir for dist and reports whether anything blocks it. On the floor
// plane this is a swept circle, tested as a ray against inflated bounds.
func (k *Kitchen) CapsuleCast(origin Vec2, radius float64, dir Vec2, dist float64) bool {
	dir = dir.Normalized()
	if dir.IsZero() {
		return false
	}
	for i := range k.colliders {
		if _, ok := k.colliders[i].Bounds.Inflate(radius).rayEnter(origin, dir, dist); ok {
			return true
		}
	}
	return false
}
