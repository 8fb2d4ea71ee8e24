// Package model defines the document structures for workflow files.
package model

// Document is the top-level structure of a workflow YAML file.
type Document struct {
	SchemaVersion int      `yaml:"schema_version"`
	FileType      string   `yaml:"file_type"`
	Workflow      Workflow `yaml:"workflow"`
}

// Workflow describes a set of tasks and the precedence constraints
// between them.
type Workflow struct {
	Name         string       `yaml:"name"`
	Tasks        []TaskSpec   `yaml:"tasks"`
	Dependencies []Dependency `yaml:"dependencies"`
}

// TaskSpec is a single task entry: a unique name and a non-negative
// duration in time units.
type TaskSpec struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
}

// Dependency states that From must complete before To starts.
type Dependency struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
