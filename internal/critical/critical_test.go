package critical

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tnakagawa/critpath/internal/graph"
)

func mustBuild(t *testing.T, tasks []graph.Task, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.Build(tasks, edges)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

func TestAnalyze_LinearChain(t *testing.T) {
	g := mustBuild(t,
		[]graph.Task{{Name: "Start", Duration: 0}, {Name: "A", Duration: 5}, {Name: "B", Duration: 7}, {Name: "End", Duration: 0}},
		[]graph.Edge{{From: "Start", To: "A"}, {From: "A", To: "B"}, {From: "B", To: "End"}},
	)

	res, err := Analyze(g, "Start", "End")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Start", "A", "B", "End"}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("expected path %v, got %v", want, res.Path)
	}
	if res.TotalDuration != 12 {
		t.Errorf("expected total 12, got %d", res.TotalDuration)
	}
}

func TestAnalyze_PicksLongerBranch(t *testing.T) {
	g := mustBuild(t,
		[]graph.Task{
			{Name: "Start", Duration: 0},
			{Name: "Short", Duration: 3},
			{Name: "Long1", Duration: 4},
			{Name: "Long2", Duration: 4},
			{Name: "End", Duration: 0},
		},
		[]graph.Edge{
			{From: "Start", To: "Short"},
			{From: "Start", To: "Long1"},
			{From: "Long1", To: "Long2"},
			{From: "Short", To: "End"},
			{From: "Long2", To: "End"},
		},
	)

	res, err := Analyze(g, "Start", "End")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Start", "Long1", "Long2", "End"}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("expected path %v, got %v", want, res.Path)
	}
	if res.TotalDuration != 8 {
		t.Errorf("expected total 8, got %d", res.TotalDuration)
	}
}

func TestAnalyze_TieBreaksToFirstInputOrder(t *testing.T) {
	// Two branches of equal length; the edge listed first must win.
	g := mustBuild(t,
		[]graph.Task{
			{Name: "Start", Duration: 0},
			{Name: "B1", Duration: 5},
			{Name: "B2", Duration: 5},
			{Name: "End", Duration: 0},
		},
		[]graph.Edge{
			{From: "Start", To: "B1"},
			{From: "Start", To: "B2"},
			{From: "B1", To: "End"},
			{From: "B2", To: "End"},
		},
	)

	res, err := Analyze(g, "Start", "End")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Start", "B1", "End"}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("expected first-listed branch %v, got %v", want, res.Path)
	}
}

// TestAnalyze_MatchesBruteForce cross-checks the relaxation result
// against exhaustive path enumeration on a multi-branch DAG.
func TestAnalyze_MatchesBruteForce(t *testing.T) {
	tasks := []graph.Task{
		{Name: "s", Duration: 0},
		{Name: "a", Duration: 2},
		{Name: "b", Duration: 9},
		{Name: "c", Duration: 4},
		{Name: "d", Duration: 7},
		{Name: "e", Duration: 1},
		{Name: "f", Duration: 6},
		{Name: "t", Duration: 0},
	}
	edges := []graph.Edge{
		{From: "s", To: "a"},
		{From: "s", To: "b"},
		{From: "a", To: "c"},
		{From: "a", To: "d"},
		{From: "b", To: "d"},
		{From: "b", To: "e"},
		{From: "c", To: "f"},
		{From: "d", To: "f"},
		{From: "e", To: "t"},
		{From: "f", To: "t"},
	}
	g := mustBuild(t, tasks, edges)

	res, err := Analyze(g, "s", "t")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	durations := make(map[string]int, len(tasks))
	for _, task := range tasks {
		durations[task.Name] = task.Duration
	}

	best := -1
	var walk func(node string, sum int)
	walk = func(node string, sum int) {
		sum += durations[node]
		if node == "t" {
			if sum > best {
				best = sum
			}
			return
		}
		for _, next := range g.Successors(node) {
			walk(next, sum)
		}
	}
	walk("s", 0)

	if res.TotalDuration != best {
		t.Errorf("expected brute-force max %d, got %d", best, res.TotalDuration)
	}
	if res.Path[0] != "s" || res.Path[len(res.Path)-1] != "t" {
		t.Errorf("expected path from s to t, got %v", res.Path)
	}

	sum := 0
	seen := make(map[string]bool)
	for _, name := range res.Path {
		if seen[name] {
			t.Errorf("task %q appears twice in path %v", name, res.Path)
		}
		seen[name] = true
		sum += durations[name]
	}
	if sum != res.TotalDuration {
		t.Errorf("path durations sum to %d, reported total %d", sum, res.TotalDuration)
	}
}

func TestAnalyze_Cycle(t *testing.T) {
	g := mustBuild(t,
		[]graph.Task{{Name: "A", Duration: 1}, {Name: "B", Duration: 1}},
		[]graph.Edge{{From: "A", To: "B"}, {From: "B", To: "A"}},
	)

	_, err := Analyze(g, "A", "B")
	if err == nil {
		t.Fatal("expected error for cyclic graph, got nil")
	}
	var cycle *graph.CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CycleError, got %T: %v", err, err)
	}
}

func TestAnalyze_NoPath(t *testing.T) {
	g := mustBuild(t,
		[]graph.Task{{Name: "A", Duration: 1}, {Name: "B", Duration: 1}, {Name: "C", Duration: 1}},
		[]graph.Edge{{From: "A", To: "B"}},
	)

	_, err := Analyze(g, "A", "C")
	if err == nil {
		t.Fatal("expected error for unreachable target, got nil")
	}
	var noPath *graph.NoPathError
	if !errors.As(err, &noPath) {
		t.Fatalf("expected NoPathError, got %T: %v", err, err)
	}
	if noPath.From != "A" || noPath.To != "C" {
		t.Errorf("expected endpoints A and C, got %q and %q", noPath.From, noPath.To)
	}
}

func TestAnalyze_UnknownEndpoint(t *testing.T) {
	g := mustBuild(t, []graph.Task{{Name: "A", Duration: 1}}, nil)

	_, err := Analyze(g, "A", "missing")
	var unknown *graph.UnknownTaskError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTaskError, got %v", err)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	g := mustBuild(t,
		[]graph.Task{{Name: "Start", Duration: 0}, {Name: "A", Duration: 3}, {Name: "B", Duration: 3}, {Name: "End", Duration: 0}},
		[]graph.Edge{{From: "Start", To: "A"}, {From: "Start", To: "B"}, {From: "A", To: "End"}, {From: "B", To: "End"}},
	)

	first, err := Analyze(g, "Start", "End")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Analyze(g, "Start", "End")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}
