// Package grid materializes rectangular blocks of hex cells offset from
// an origin point.
package grid

import (
	"fmt"

	"github.com/gravitas-015/hexlattice/hex"
)

// Shape tags the intended outline of a map. The tag is descriptive only:
// construction is always rectangular. Pruning a map to a true hexagon or
// composite-hex boundary would need its own boundary rule, and none is
// defined yet.
type Shape int

const (
	Rectangle Shape = iota
	Hexagon
	MegaHex
)

// String returns the lower-case name of the shape.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Hexagon:
		return "hexagon"
	case MegaHex:
		return "megahex"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its tag.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "rectangle":
		return Rectangle, nil
	case "hexagon":
		return Hexagon, nil
	case "megahex":
		return MegaHex, nil
	default:
		return Rectangle, fmt.Errorf("unknown shape %q", name)
	}
}

// Orientation tags which way the hex rows run. Descriptive only, like
// Shape.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the lower-case name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation maps an orientation name to its tag.
func ParseOrientation(name string) (Orientation, error) {
	switch name {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", name)
	}
}

// Hex is a single grid cell bound to one lattice location. Two cells are
// equal when their locations are equal. Gameplay content (terrain, items,
// occupants) attaches by composition keyed on Location rather than as
// fields here; see package terrain.
type Hex struct {
	Location hex.Point
}

// Row is one ordered row of cells.
type Row struct {
	Cells []Hex
}

// Map is an ordered two-dimensional block of cells. Size.Hx is the row
// count and Size.Hy the column count; the cell at row i, column j sits at
// Origin + (i, j), a plain Cartesian offset on the two stored axes rather
// than a hex-distance offset.
type Map struct {
	Shape       Shape
	Orientation Orientation
	Size        hex.Point
	Origin      hex.Point
	Rows        []Row
}

// New builds a map of size.Hx rows by size.Hy columns around origin. The
// map never resizes after construction.
func New(shape Shape, orientation Orientation, size, origin hex.Point) *Map {
	m := &Map{
		Shape:       shape,
		Orientation: orientation,
		Size:        size,
		Origin:      origin,
		Rows:        make([]Row, 0, max(size.Hx, 0)),
	}
	for i := 0; i < size.Hx; i++ {
		row := Row{Cells: make([]Hex, 0, max(size.Hy, 0))}
		for j := 0; j < size.Hy; j++ {
			row.Cells = append(row.Cells, Hex{
				Location: origin.Add(hex.Point{Hx: i, Hy: j}),
			})
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

// At returns the cell at row i, column j by reference. Indexes outside
// the map panic, the same as direct slice indexing.
func (m *Map) At(i, j int) *Hex {
	return &m.Rows[i].Cells[j]
}

// CellCount returns the total number of cells in the map.
func (m *Map) CellCount() int {
	n := 0
	for _, row := range m.Rows {
		n += len(row.Cells)
	}
	return n
}

// String returns a one-line summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%s %s %dx%d at %+v)", m.Shape, m.Orientation, m.Size.Hx, m.Size.Hy, m.Origin)
}
