package graph

// TopologicalOrder returns the task names in an order where every edge
// points from an earlier to a later task, using Kahn's algorithm.
// Ready tasks are dequeued in insertion order, so the result is stable
// for a given input order. On cycle detection the cycle path is found
// via DFS and reported in a CycleError.
func (g *Graph) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.tasks))
	for _, name := range g.order {
		inDegree[name] = len(g.rev[name])
	}

	var queue []string
	for _, name := range g.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var sorted []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		sorted = append(sorted, node)

		for _, succ := range g.adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(sorted) == len(g.tasks) {
		return sorted, nil
	}

	return nil, &CycleError{Path: g.findCyclePath(inDegree)}
}

// findCyclePath finds a cycle path among tasks with non-zero residual
// in-degree, using DFS with white/gray/black coloring.
func (g *Graph) findCyclePath(inDegree map[string]int) []string {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // finished
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var cyclePath []string

	var dfs func(node string) bool
	dfs = func(node string) bool {
		color[node] = gray
		for _, succ := range g.adj[node] {
			if color[succ] == gray {
				// Found cycle: walk parents back to the entry point
				cyclePath = []string{node}
				current := node
				for current != succ {
					current = parent[current]
					cyclePath = append(cyclePath, current)
				}
				// Reverse to get forward order, then close the loop
				for i, j := 0, len(cyclePath)-1; i < j; i, j = i+1, j-1 {
					cyclePath[i], cyclePath[j] = cyclePath[j], cyclePath[i]
				}
				cyclePath = append(cyclePath, succ)
				return true
			}
			if color[succ] == white {
				parent[succ] = node
				if dfs(succ) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for _, name := range g.order {
		if inDegree[name] > 0 && color[name] == white {
			if dfs(name) {
				return cyclePath
			}
		}
	}

	return []string{"(cycle detected)"}
}
