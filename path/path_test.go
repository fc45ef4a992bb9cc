package path

import (
	"testing"

	"github.com/gravitas-015/hexlattice/hex"
)

func TestBFSTrivial(t *testing.T) {
	p := hex.Point{Hx: 2, Hy: -1}
	got := BFS(p, p, Within(p, 3))
	if len(got) != 1 || got[0] != p {
		t.Fatalf("BFS(p, p) = %v", got)
	}
}

func TestBFSOpenLattice(t *testing.T) {
	start := hex.Origin
	goal := hex.Point{Hx: 3, Hy: 2}
	got := BFS(start, goal, Within(hex.Origin, 10))

	want := start.Distance(goal) + 1
	if len(got) != want {
		t.Fatalf("path has %d points, want %d", len(got), want)
	}
	if got[0] != start || got[len(got)-1] != goal {
		t.Fatalf("path endpoints = %+v .. %+v", got[0], got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Distance(got[i]) != 1 {
			t.Fatalf("path steps %d and %d are not adjacent", i-1, i)
		}
	}
}

func TestBFSUnreachable(t *testing.T) {
	// the goal sits outside the passable disc
	got := BFS(hex.Origin, hex.Point{Hx: 5, Hy: 5}, Within(hex.Origin, 2))
	if got != nil {
		t.Fatalf("expected nil path, got %v", got)
	}
}

func TestBFSDetour(t *testing.T) {
	// wall off the direct corridor and make the walker go around
	start := hex.Origin
	goal := hex.Point{Hx: 4, Hy: 0}
	wall := map[hex.Point]bool{
		{Hx: 2, Hy: -2}: true,
		{Hx: 2, Hy: -1}: true,
		{Hx: 2, Hy: 0}:  true,
		{Hx: 2, Hy: 1}:  true,
		{Hx: 2, Hy: 2}:  true,
	}
	passable := func(p hex.Point) bool {
		return !wall[p] && hex.Origin.Distance(p) <= 8
	}

	got := BFS(start, goal, passable)
	if got == nil {
		t.Fatalf("no path found around the wall")
	}
	if len(got) <= start.Distance(goal)+1 {
		t.Fatalf("path of %d points cannot cross the wall", len(got))
	}
	for _, p := range got[1:] {
		if wall[p] {
			t.Fatalf("path passes through wall cell %+v", p)
		}
	}
}

func TestAStarMatchesBFS(t *testing.T) {
	start := hex.Point{Hx: -2, Hy: 1}
	goal := hex.Point{Hx: 3, Hy: -3}
	passable := Within(hex.Origin, 12)

	bfs := BFS(start, goal, passable)
	astar := AStar(start, goal, HeuristicTo(goal), Neighbors(passable), UnitCost)

	if bfs == nil || astar == nil {
		t.Fatalf("missing path: bfs=%v astar=%v", bfs, astar)
	}
	if len(astar) != len(bfs) {
		t.Fatalf("A* path has %d points, BFS has %d", len(astar), len(bfs))
	}
	if astar[0] != start || astar[len(astar)-1] != goal {
		t.Fatalf("A* endpoints = %+v .. %+v", astar[0], astar[len(astar)-1])
	}
}

func TestAStarWeighted(t *testing.T) {
	// a costly band between start and goal should push the path around it
	start := hex.Origin
	goal := hex.Point{Hx: 6, Hy: 0}
	costly := func(p hex.Point) bool { return p.Hx == 3 && p.Hy > -3 && p.Hy < 3 }
	cost := func(a, b hex.Point) int {
		if costly(b) {
			return 10
		}
		return 1
	}

	got := AStar(start, goal, HeuristicTo(goal), Neighbors(Within(hex.Origin, 10)), cost)
	if got == nil {
		t.Fatalf("no path found")
	}
	for _, p := range got {
		if costly(p) {
			t.Fatalf("path crosses the costly band at %+v", p)
		}
	}
}

func TestWithin(t *testing.T) {
	passable := Within(hex.Point{Hx: 1, Hy: 1}, 2)
	if !passable(hex.Point{Hx: 1, Hy: 3}) {
		t.Fatalf("point at distance 2 rejected")
	}
	if passable(hex.Point{Hx: 1, Hy: 4}) {
		t.Fatalf("point at distance 3 admitted")
	}
}
