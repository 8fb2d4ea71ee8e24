// Package workflow loads workflow definitions from YAML files and
// turns them into task graphs.
package workflow

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/tnakagawa/critpath/internal/graph"
	"github.com/tnakagawa/critpath/internal/model"
)

// Load reads and validates a workflow file.
func Load(path string) (*model.Workflow, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	wf, err := LoadFromBytes(content)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return wf, nil
}

// LoadFromBytes validates the schema header and decodes the workflow
// document.
func LoadFromBytes(content []byte) (*model.Workflow, error) {
	if err := validateSchemaHeader(content); err != nil {
		return nil, err
	}

	var doc model.Document
	if err := yamlv3.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if len(doc.Workflow.Tasks) == 0 {
		return nil, fmt.Errorf("workflow has no tasks")
	}

	return &doc.Workflow, nil
}

// BuildGraph constructs the task graph for a workflow. Name and
// duration validation happens in graph.Build.
func BuildGraph(wf *model.Workflow) (*graph.Graph, error) {
	tasks := make([]graph.Task, 0, len(wf.Tasks))
	for _, t := range wf.Tasks {
		tasks = append(tasks, graph.Task{Name: t.Name, Duration: t.Duration})
	}

	edges := make([]graph.Edge, 0, len(wf.Dependencies))
	for _, d := range wf.Dependencies {
		edges = append(edges, graph.Edge{From: d.From, To: d.To})
	}

	return graph.Build(tasks, edges)
}
