// Package traverse walks the workflow graph breadth-first.
package traverse

import "github.com/tnakagawa/critpath/internal/graph"

// Edges returns the breadth-first tree edges reachable from the given
// task, in discovery order: an edge (u, v) is emitted only when v is
// seen for the first time. Successors are scanned in edge-insertion
// order, so the result is deterministic for a given input order.
func Edges(g *graph.Graph, from string) ([]graph.Edge, error) {
	if _, ok := g.Task(from); !ok {
		return nil, &graph.UnknownTaskError{Name: from}
	}

	visited := map[string]bool{from: true}
	queue := []string{from}

	var out []graph.Edge
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range g.Successors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			out = append(out, graph.Edge{From: u, To: v})
			queue = append(queue, v)
		}
	}

	return out, nil
}
