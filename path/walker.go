// Package path provides shortest-path search over the hex lattice. The
// searches consume only the hex algebra: callers describe which points
// may be entered and what each step costs.
package path

import "github.com/gravitas-015/hexlattice/hex"

// Passable reports whether a point may be entered.
type Passable func(p hex.Point) bool

// Within returns a Passable admitting the points of hex-distance at most
// radius from center.
func Within(center hex.Point, radius int) Passable {
	return func(p hex.Point) bool {
		return center.Distance(p) <= radius
	}
}

// BFS finds a shortest path from start to goal across passable points,
// inclusive of both endpoints. Returns nil when the goal is unreachable.
// Ties between equally short paths break on direction order 0..5.
func BFS(start, goal hex.Point, passable Passable) []hex.Point {
	if start == goal {
		return []hex.Point{start}
	}

	prev := make(map[hex.Point]hex.Point)
	visited := map[hex.Point]bool{start: true}
	queue := []hex.Point{start}
	found := false

	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for d := 0; d < 6; d++ {
			next := cur.Neighbor(d)
			if visited[next] || !passable(next) {
				continue
			}
			visited[next] = true
			prev[next] = cur
			if next == goal {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}
	if !found {
		return nil
	}

	path := []hex.Point{goal}
	for cur := goal; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	reverse(path)
	return path
}

func reverse(path []hex.Point) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
