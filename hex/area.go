package hex

import "errors"

// ErrNegativeRadius reports a negative radius or distance passed to one
// of the enumeration operations, which are only defined for radius >= 0.
// A negative radius is a caller error, never silently treated as zero.
var ErrNegativeRadius = errors.New("hex: negative radius")

// Region returns every point within hex-distance dist of p. The result
// holds exactly 3*dist*dist + 3*dist + 1 points.
func (p Point) Region(dist int) ([]Point, error) {
	if dist < 0 {
		return nil, ErrNegativeRadius
	}
	region := make([]Point, 0, 3*dist*dist+3*dist+1)
	for hx := -dist; hx <= dist; hx++ {
		for hy := max(-dist, -hx-dist); hy <= min(dist, -hx+dist); hy++ {
			region = append(region, p.Add(Point{Hx: hx, Hy: hy}))
		}
	}
	return region, nil
}

// Ring returns the 6*radius points at exactly hex-distance radius from p,
// in angular order. The walk starts at p + Unit[4]*radius and takes
// radius steps in each of the six directions in turn, appending each
// visited point before stepping, so Ring(Origin, 1) reads Unit[4],
// Unit[5], Unit[0], Unit[1], Unit[2], Unit[3].
func (p Point) Ring(radius int) ([]Point, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	if radius == 0 {
		return []Point{p}, nil
	}
	ring := make([]Point, 0, 6*radius)
	next := p.Add(Unit[4].Mul(radius))
	for hextant := 0; hextant < 6; hextant++ {
		for step := 0; step < radius; step++ {
			ring = append(ring, next)
			next = next.Neighbor(hextant)
		}
	}
	return ring, nil
}

// Spiral returns the concatenation of Ring(p, 0) through Ring(p, radius).
// It visits the same points as Region(p, radius), so its length is
// 3*radius*radius + 3*radius + 1.
func (p Point) Spiral(radius int) ([]Point, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	spiral := make([]Point, 0, 3*radius*radius+3*radius+1)
	for r := 0; r <= radius; r++ {
		ring, err := p.Ring(r)
		if err != nil {
			return nil, err
		}
		spiral = append(spiral, ring...)
	}
	return spiral, nil
}
