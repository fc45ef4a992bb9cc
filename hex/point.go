// Package hex implements coordinate algebra for a triangular-lattice hex
// grid. The algorithms follow the Redblob Games hexagonal grid reference:
// https://www.redblobgames.com/grids/hexagons/
//
// Every lattice node sits on three axes, but only two are independent. A
// Point stores the hx and hy axes and derives the third (hz) on demand.
// This is a lightly modified axial coordinate system; the other common
// systems (cube, offset) are equivalent and convertible.
package hex

// Point is a location or displacement on the hex lattice, defined by two
// integer axes. Points are plain values: == compares both axes, and every
// operation returns a new Point. The zero value is Origin.
type Point struct {
	Hx int
	Hy int
}

// Origin is the reference point for all relative computations: (0, 0).
var Origin = Point{Hx: 0, Hy: 0}

// Unit holds the six displacements of hex-distance 1 in rotational order:
// each successive index is one 60-degree turn from the previous, and
// opposite indices (k, k+3) are antiparallel. Indices 0 and 3 lie on the
// hx axis, 1 and 4 on the hy axis, and 2 and 5 on the hz axis (hy-hx == 0).
var Unit = [6]Point{
	{Hx: 0, Hy: -1}, // direction 0
	{Hx: 1, Hy: -1}, // direction 1
	{Hx: 1, Hy: 0},  // direction 2
	{Hx: 0, Hy: 1},  // direction 3
	{Hx: -1, Hy: 1}, // direction 4
	{Hx: -1, Hy: 0}, // direction 5
}

// Hz returns the dependent third axis: hz = hy - hx. It is always derived,
// never stored.
func (p Point) Hz() int {
	return p.Hy - p.Hx
}

// Add returns p + q, component-wise.
func (p Point) Add(q Point) Point {
	return Point{Hx: p.Hx + q.Hx, Hy: p.Hy + q.Hy}
}

// Sub returns p - q, component-wise.
func (p Point) Sub(q Point) Point {
	return Point{Hx: p.Hx - q.Hx, Hy: p.Hy - q.Hy}
}

// Mul scales the vector p by k.
func (p Point) Mul(k int) Point {
	return Point{Hx: p.Hx * k, Hy: p.Hy * k}
}

// Invert returns the vector pointing in the opposite direction: p * -1.
func (p Point) Invert() Point {
	return p.Mul(-1)
}

// Neighbor returns the adjacent point one step away in the given
// direction. Directions outside [0,6) wrap, so -1 means direction 5.
func (p Point) Neighbor(direction int) Point {
	return p.Add(Unit[emod(direction, 6)])
}

// Reflect mirrors p across one of the three lattice axes, selected by
// axis mod 3. The selected axis is held fixed and the other two swap:
// axis 0 keeps hx, axis 1 keeps hy, axis 2 keeps hz.
func (p Point) Reflect(axis int) Point {
	switch emod(axis, 3) {
	case 0:
		return Point{Hx: p.Hx, Hy: p.Hz()}
	case 1:
		return Point{Hx: p.Hz(), Hy: p.Hy}
	default:
		return Point{Hx: p.Hy, Hy: p.Hx}
	}
}

// ReflectHx mirrors p across the hx axis.
func (p Point) ReflectHx() Point {
	return Point{Hx: p.Hx, Hy: p.Hz()}
}

// ReflectHy mirrors p across the hy axis.
func (p Point) ReflectHy() Point {
	return Point{Hx: p.Hz(), Hy: p.Hy}
}

// ReflectHz mirrors p across the hz axis.
func (p Point) ReflectHz() Point {
	return Point{Hx: p.Hy, Hy: p.Hx}
}

// Rotate turns p by 60 degrees times hextant about the origin. In cube
// coordinates a 60-degree turn cycles the three axes and flips their
// signs, so the axis cycle has period 3 and the sign has period 2; the
// case table below covers hextant mod 3 and the sign covers hextant
// mod 2, giving the full period of 6. Rotate(3) equals Invert.
func (p Point) Rotate(hextant int) Point {
	sign := 1
	if emod(hextant, 2) != 0 {
		sign = -1
	}
	switch emod(hextant, 3) {
	case 0:
		return Point{Hx: p.Hx * sign, Hy: p.Hy * sign}
	case 1:
		return Point{Hx: p.Hy * sign, Hy: p.Hz() * sign}
	default:
		return Point{Hx: p.Hz() * sign, Hy: p.Hx * sign}
	}
}

// Distance returns the hex distance between p and q: the number of steps
// a walk between them needs. The three axis deltas are linearly
// dependent, so summing their magnitudes counts every step exactly twice;
// the sum is always even and the division is exact.
func (p Point) Distance(q Point) int {
	d := p.Sub(q)
	return (abs(d.Hx) + abs(d.Hx+d.Hy) + abs(d.Hy)) / 2
}

// emod is the Euclidean modulus: the result is always in [0, n), even
// for negative a.
func emod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
