package main

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/gravitas-015/hexlattice/grid"
	"github.com/gravitas-015/hexlattice/hex"
	"github.com/gravitas-015/hexlattice/internal/config"
	"github.com/gravitas-015/hexlattice/terrain"
)

func main() {
	log.Println("Building hex map...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexmap.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded from %s", configPath)

	shape, err := grid.ParseShape(cfg.Map.Shape)
	if err != nil {
		log.Fatalf("Invalid map shape: %v", err)
	}
	orientation, err := grid.ParseOrientation(cfg.Map.Orientation)
	if err != nil {
		log.Fatalf("Invalid map orientation: %v", err)
	}

	size := hex.Point{Hx: cfg.Map.Rows, Hy: cfg.Map.Columns}
	origin := hex.Point{Hx: cfg.Map.OriginHx, Hy: cfg.Map.OriginHy}
	m := grid.New(shape, orientation, size, origin)

	log.Printf("Built %s with %s cells", m, humanize.Comma(int64(m.CellCount())))
	if m.CellCount() > 0 {
		first := m.At(0, 0).Location
		last := m.At(size.Hx-1, size.Hy-1).Location
		log.Printf("Corner cells at %+v and %+v, diagonal hex distance %d", first, last, first.Distance(last))
	}

	if cfg.Terrain.Enabled {
		field := terrain.Generate(m, terrain.Config{
			Seed:        cfg.Terrain.Seed,
			SeaLevel:    cfg.Terrain.SeaLevel,
			MountainLvl: cfg.Terrain.MountainLvl,
			Scale:       cfg.Terrain.Scale,
		})
		log.Printf("Terrain generated with seed %d:", cfg.Terrain.Seed)
		census := field.Census()
		for k := terrain.Water; k <= terrain.Mountain; k++ {
			if n := census[k]; n > 0 {
				log.Printf("  %-8s %s cells", k, humanize.Comma(int64(n)))
			}
		}
	}
}
