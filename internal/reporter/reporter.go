// Package reporter renders the combined workflow analysis as text or
// JSON.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/tnakagawa/critpath/internal/critical"
	"github.com/tnakagawa/critpath/internal/graph"
)

// Report holds the structured results of one analysis run.
type Report struct {
	CriticalPath  []PathEntry `json:"critical_path"`
	TotalDuration int         `json:"total_duration"`
	BFSEdges      []EdgeEntry `json:"bfs_edges"`
	Degree        []Score     `json:"degree_centrality"`
	Betweenness   []Score     `json:"betweenness_centrality"`

	topK int
}

// PathEntry is one task on the critical path.
type PathEntry struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// EdgeEntry is one traversed edge.
type EdgeEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Score is one task's centrality value.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"score"`
}

// New assembles a Report. Centrality maps are ranked by descending
// score with ties broken by task insertion order; topK limits how many
// entries the text output shows per ranking.
func New(g *graph.Graph, res *critical.Result, bfsEdges []graph.Edge, degree, betweenness map[string]float64, topK int) *Report {
	r := &Report{
		TotalDuration: res.TotalDuration,
		topK:          topK,
	}

	for _, name := range res.Path {
		t, _ := g.Task(name)
		r.CriticalPath = append(r.CriticalPath, PathEntry{Name: name, Duration: t.Duration})
	}

	for _, e := range bfsEdges {
		r.BFSEdges = append(r.BFSEdges, EdgeEntry{From: e.From, To: e.To})
	}

	r.Degree = rank(g, degree)
	r.Betweenness = rank(g, betweenness)

	return r
}

// rank orders a score map by descending value, ties broken by task
// insertion order so output is stable across runs.
func rank(g *graph.Graph, scores map[string]float64) []Score {
	names := g.Names()
	ranked := make([]Score, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, Score{Name: name, Value: scores[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}

// WriteText prints the three report sections.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintln(w, "Critical Path:")
	for _, e := range r.CriticalPath {
		fmt.Fprintf(w, "- %s (Duration: %d)\n", e.Name, e.Duration)
	}
	fmt.Fprintf(w, "Total Duration: %d time units\n", r.TotalDuration)

	fmt.Fprintln(w, "\nBFS Traversal Path:")
	for _, e := range r.BFSEdges {
		fmt.Fprintf(w, "- %s → %s\n", e.From, e.To)
	}

	fmt.Fprintf(w, "\nDegree Centrality (Top %d nodes):\n", r.topK)
	for _, s := range top(r.Degree, r.topK) {
		fmt.Fprintf(w, "- %s: %.3f\n", s.Name, s.Value)
	}

	fmt.Fprintf(w, "\nBetweenness Centrality (Top %d nodes):\n", r.topK)
	for _, s := range top(r.Betweenness, r.topK) {
		fmt.Fprintf(w, "- %s: %.3f\n", s.Name, s.Value)
	}
}

// WriteJSON prints the full report (rankings untruncated) as indented
// JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func top(scores []Score, k int) []Score {
	if k > len(scores) {
		k = len(scores)
	}
	return scores[:k]
}
