package graph

// Task is a single workflow step with a fixed duration in time units.
type Task struct {
	Name     string
	Duration int
}

// Edge is a precedence constraint: From must complete before To starts.
type Edge struct {
	From string
	To   string
}

// Graph is a directed graph over named tasks. Build is the only
// constructor, and no mutating operations are exported afterwards, so a
// *Graph can be shared freely between queries.
//
// Adjacency lists preserve edge-insertion order. Queries that break
// ties (critical path relaxation, BFS discovery) therefore produce the
// same result on every run for a given input order.
type Graph struct {
	tasks map[string]Task
	order []string // task names in insertion order
	edges []Edge   // edges in insertion order

	adj map[string][]string // task -> successors
	rev map[string][]string // task -> predecessors

	roots  []string // tasks with no predecessors, insertion order
	leaves []string // tasks with no successors, insertion order
}

// Len returns the number of tasks.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Task looks up a task by name.
func (g *Graph) Task(name string) (Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// Names returns all task names in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Successors returns the tasks directly depending on name, in
// edge-insertion order.
func (g *Graph) Successors(name string) []string {
	return g.adj[name]
}

// Predecessors returns the tasks name directly depends on, in
// edge-insertion order.
func (g *Graph) Predecessors(name string) []string {
	return g.rev[name]
}

// Roots returns the tasks with no predecessors.
func (g *Graph) Roots() []string {
	return g.roots
}

// Leaves returns the tasks with no successors.
func (g *Graph) Leaves() []string {
	return g.leaves
}
