// Package critical computes the critical path of a workflow: the
// maximum-total-duration path from the start task to the end task,
// where each visited task contributes its own duration.
//
// The longest path is found by a single relaxation pass in topological
// order: dist[v] = max over predecessors u of dist[u] + duration(u).
// This is equivalent to running shortest-path with negated durations,
// but negated weights violate Dijkstra's non-negative precondition,
// while relaxation in topological order is exact on any DAG and runs
// in O(V + E).
package critical

import "github.com/tnakagawa/critpath/internal/graph"

// Result holds a computed critical path.
type Result struct {
	// Path lists the task names from start to end inclusive.
	Path []string
	// TotalDuration is the sum of the durations of every task on Path.
	TotalDuration int
}

// Analyze returns the critical path from one task to another. It
// returns a graph.CycleError if the graph is not acyclic and a
// graph.NoPathError if to is unreachable from from. Repeated calls on
// the same graph return identical results.
func Analyze(g *graph.Graph, from, to string) (*Result, error) {
	if _, ok := g.Task(from); !ok {
		return nil, &graph.UnknownTaskError{Name: from}
	}
	if _, ok := g.Task(to); !ok {
		return nil, &graph.UnknownTaskError{Name: to}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int, g.Len())
	parent := make(map[string]string, g.Len())
	reached := make(map[string]bool, g.Len())

	dist[from] = 0
	reached[from] = true

	for _, v := range order {
		if v == from {
			continue // only paths starting at from count
		}
		// Predecessors are scanned in edge-insertion order and a parent
		// is replaced only on strict improvement, so ties go to the
		// first path in input order.
		for _, u := range g.Predecessors(v) {
			if !reached[u] {
				continue
			}
			ut, _ := g.Task(u)
			cand := dist[u] + ut.Duration
			if !reached[v] || cand > dist[v] {
				reached[v] = true
				dist[v] = cand
				parent[v] = u
			}
		}
	}

	if !reached[to] {
		return nil, &graph.NoPathError{From: from, To: to}
	}

	var path []string
	for cur := to; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	tt, _ := g.Task(to)
	return &Result{
		Path:          path,
		TotalDuration: dist[to] + tt.Duration,
	}, nil
}
