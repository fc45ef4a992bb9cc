// Package terrain attaches terrain to lattice locations by composition.
// Grid cells stay location-only values; a Field owns the terrain and keys
// it by hex.Point, treating each location as an immutable key.
package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-015/hexlattice/grid"
	"github.com/gravitas-015/hexlattice/hex"
)

// Kind classifies a cell's terrain.
type Kind uint8

const (
	Water Kind = iota
	Plains
	Forest
	Hills
	Mountain
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Plains:
		return "plains"
	case Forest:
		return "forest"
	case Hills:
		return "hills"
	case Mountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Config holds terrain generation parameters.
type Config struct {
	Seed        int64   // noise seed; generation is deterministic per seed
	SeaLevel    float64 // elevation threshold for water (0-1)
	MountainLvl float64 // elevation threshold for mountains (0-1)
	Scale       float64 // cells per noise feature; larger means smoother
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		SeaLevel:    0.30,
		MountainLvl: 0.75,
		Scale:       12,
	}
}

// Field maps lattice locations to terrain. A Field never reaches back
// into the grid cells it describes.
type Field struct {
	cells map[hex.Point]Kind
}

// Generate samples layered simplex noise (elevation plus moisture) at
// every cell of m and buckets the result into kinds.
func Generate(m *grid.Map, cfg Config) *Field {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultConfig().Scale
	}
	elevation := opensimplex.NewNormalized(cfg.Seed)
	moisture := opensimplex.NewNormalized(cfg.Seed + 1)

	f := &Field{cells: make(map[hex.Point]Kind, m.CellCount())}
	for i := range m.Rows {
		for j := range m.Rows[i].Cells {
			p := m.Rows[i].Cells[j].Location
			x := float64(p.Hx) / cfg.Scale
			y := float64(p.Hy) / cfg.Scale
			f.cells[p] = classify(elevation.Eval2(x, y), moisture.Eval2(x, y), cfg)
		}
	}
	return f
}

func classify(elevation, moisture float64, cfg Config) Kind {
	switch {
	case elevation < cfg.SeaLevel:
		return Water
	case elevation >= cfg.MountainLvl:
		return Mountain
	case elevation >= cfg.MountainLvl-0.15:
		return Hills
	case moisture >= 0.55:
		return Forest
	default:
		return Plains
	}
}

// At returns the terrain at p and whether p is covered by the field.
func (f *Field) At(p hex.Point) (Kind, bool) {
	k, ok := f.cells[p]
	return k, ok
}

// Len returns the number of covered locations.
func (f *Field) Len() int {
	return len(f.cells)
}

// Census counts covered locations by kind.
func (f *Field) Census() map[Kind]int {
	census := make(map[Kind]int)
	for _, k := range f.cells {
		census[k]++
	}
	return census
}
