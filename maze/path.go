package maze

import "slices"

// Path returns the cells on the route from one position to another, both ends
// included. In a perfect maze the route is unique. Nil is returned when either
// end lies outside the grid.
func (m *Maze) Path(from, to Position) []Position {
	if !m.InBound(from.X, from.Y) || !m.InBound(to.X, to.Y) {
		return nil
	}

	queue := []Position{from}
	cameFrom := map[Position]Position{}
	visited := map[Position]struct{}{from: {}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Position{curr}
			for curr != from {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			slices.Reverse(path)
			return path
		}

		for _, d := range directions {
			if !m.CanMove(curr.X, curr.Y, d) {
				continue
			}
			next := curr.Step(d)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

