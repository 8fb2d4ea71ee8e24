// Package centrality scores tasks by their structural importance in
// the workflow graph.
package centrality

import "github.com/tnakagawa/critpath/internal/graph"

// Degree computes normalized degree centrality for every task: the
// fraction of the other n-1 tasks it is directly connected to, counting
// incoming and outgoing edges.
func Degree(g *graph.Graph) map[string]float64 {
	scores := make(map[string]float64, g.Len())
	n := g.Len()
	if n < 2 {
		for _, name := range g.Names() {
			scores[name] = 0
		}
		return scores
	}

	norm := float64(n - 1)
	for _, name := range g.Names() {
		deg := len(g.Predecessors(name)) + len(g.Successors(name))
		scores[name] = float64(deg) / norm
	}
	return scores
}

// Betweenness computes normalized betweenness centrality for every
// task using Brandes' algorithm: the fraction of all-pairs shortest
// paths that pass through the task as an intermediate. Scores are
// normalized to [0, 1] by the directed-graph factor (n-1)*(n-2).
func Betweenness(g *graph.Graph) map[string]float64 {
	cb := make(map[string]float64, g.Len())
	for _, name := range g.Names() {
		cb[name] = 0
	}

	n := g.Len()
	if n < 3 {
		return cb
	}

	for _, s := range g.Names() {
		stack, sigma, pred := countShortestPaths(g, s)
		accumulate(s, stack, sigma, pred, cb)
	}

	normFactor := float64((n - 1) * (n - 2))
	for name := range cb {
		cb[name] /= normFactor
	}

	return cb
}

// countShortestPaths runs the BFS phase of Brandes' algorithm from
// source s. It returns the visit stack (for reverse back-propagation),
// shortest-path counts (sigma), and predecessor lists (pred).
func countShortestPaths(g *graph.Graph, s string) ([]string, map[string]float64, map[string][]string) {
	n := g.Len()
	stack := make([]string, 0, n)
	pred := make(map[string][]string, n)
	sigma := make(map[string]float64, n)
	dist := make(map[string]int, n)

	for _, name := range g.Names() {
		dist[name] = -1
	}
	sigma[s] = 1
	dist[s] = 0

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range g.Successors(v) {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred
}

// accumulate performs the back-propagation phase of Brandes'
// algorithm, adding pair-dependency values into the centrality map.
func accumulate(s string, stack []string, sigma map[string]float64, pred map[string][]string, cb map[string]float64) {
	delta := make(map[string]float64, len(stack))

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}
