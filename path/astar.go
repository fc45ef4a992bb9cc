package path

import (
	"container/heap"

	"github.com/gravitas-015/hexlattice/hex"
)

// AStar computes a shortest path using the A* algorithm.
//   - h: admissible heuristic, e.g. HeuristicTo(goal)
//   - neighbors: adjacent points to explore
//   - cost: edge cost between two adjacent points (values below 1 are
//     clamped to 1)
//
// Returns the path including start and goal, or nil if no path exists.
func AStar(start, goal hex.Point,
	h func(p hex.Point) int,
	neighbors func(p hex.Point) []hex.Point,
	cost func(a, b hex.Point) int,
) []hex.Point {
	if start == goal {
		return []hex.Point{start}
	}

	open := &nodePQ{}
	heap.Init(open)
	heap.Push(open, &pqNode{p: start, f: h(start)})

	g := map[hex.Point]int{start: 0}
	came := map[hex.Point]hex.Point{}
	closed := map[hex.Point]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).p
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			path := []hex.Point{goal}
			for k := goal; k != start; {
				k = came[k]
				path = append(path, k)
			}
			reverse(path)
			return path
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := cost(cur, nb)
			if step < 1 {
				step = 1
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				heap.Push(open, &pqNode{p: nb, f: tentative + h(nb)})
			}
		}
	}
	return nil
}

// HeuristicTo returns the hex-distance heuristic toward goal.
func HeuristicTo(goal hex.Point) func(p hex.Point) int {
	return func(p hex.Point) int { return p.Distance(goal) }
}

// Neighbors returns the six adjacent points that satisfy passable.
func Neighbors(passable Passable) func(p hex.Point) []hex.Point {
	return func(p hex.Point) []hex.Point {
		out := make([]hex.Point, 0, 6)
		for d := 0; d < 6; d++ {
			if next := p.Neighbor(d); passable(next) {
				out = append(out, next)
			}
		}
		return out
	}
}

// UnitCost assigns every step a cost of 1.
func UnitCost(a, b hex.Point) int { return 1 }

// priority queue keyed on fScore
type pqNode struct {
	p hex.Point
	f int
}

type nodePQ []*pqNode

func (q nodePQ) Len() int           { return len(q) }
func (q nodePQ) Less(i, j int) bool { return q[i].f < q[j].f }
func (q nodePQ) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodePQ) Push(x any)        { *q = append(*q, x.(*pqNode)) }
func (q *nodePQ) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
