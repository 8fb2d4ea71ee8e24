// Package graph builds an immutable directed graph of workflow tasks
// and provides the orderings the analytics run on.
package graph

import "fmt"

// Build constructs a Graph from an ordered task list and an ordered
// edge list. It validates names and durations; acyclicity is checked by
// TopologicalOrder when a query needs it, so traversal and centrality
// keep working on graphs a cycle would otherwise poison.
func Build(tasks []Task, edges []Edge) (*Graph, error) {
	g := &Graph{
		tasks: make(map[string]Task, len(tasks)),
		order: make([]string, 0, len(tasks)),
		adj:   make(map[string][]string),
		rev:   make(map[string][]string),
	}

	for _, t := range tasks {
		if _, ok := g.tasks[t.Name]; ok {
			return nil, &DuplicateTaskError{Name: t.Name}
		}
		if t.Duration < 0 {
			return nil, &InvalidDurationError{Name: t.Name, Duration: t.Duration}
		}
		g.tasks[t.Name] = t
		g.order = append(g.order, t.Name)
	}

	for _, e := range edges {
		if _, ok := g.tasks[e.From]; !ok {
			return nil, &UnknownTaskError{Name: e.From, From: e.From, To: e.To}
		}
		if _, ok := g.tasks[e.To]; !ok {
			return nil, &UnknownTaskError{Name: e.To, From: e.From, To: e.To}
		}
		g.edges = append(g.edges, e)
		g.adj[e.From] = append(g.adj[e.From], e.To)
		g.rev[e.To] = append(g.rev[e.To], e.From)
	}

	for _, name := range g.order {
		if len(g.rev[name]) == 0 {
			g.roots = append(g.roots, name)
		}
		if len(g.adj[name]) == 0 {
			g.leaves = append(g.leaves, name)
		}
	}

	return g, nil
}

// Start returns the unique root task, the designated entry point of the
// workflow.
func (g *Graph) Start() (string, error) {
	if len(g.roots) != 1 {
		return "", fmt.Errorf("workflow needs exactly one start task (no predecessors), found %d", len(g.roots))
	}
	return g.roots[0], nil
}

// End returns the unique leaf task, the designated exit point of the
// workflow.
func (g *Graph) End() (string, error) {
	if len(g.leaves) != 1 {
		return "", fmt.Errorf("workflow needs exactly one end task (no successors), found %d", len(g.leaves))
	}
	return g.leaves[0], nil
}
