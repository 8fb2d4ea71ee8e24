package graph

import (
	"fmt"
	"strings"
)

// DuplicateTaskError reports a task name that appears more than once in
// the input task list. Duplicates are rejected rather than merged so
// that data-entry mistakes surface immediately.
type DuplicateTaskError struct {
	Name string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task %q", e.Name)
}

// UnknownTaskError reports a reference to a task name that is not in
// the task list. From/To identify the referencing edge when the
// reference came from one.
type UnknownTaskError struct {
	Name string
	From string
	To   string
}

func (e *UnknownTaskError) Error() string {
	if e.From != "" || e.To != "" {
		return fmt.Sprintf("edge %q -> %q references unknown task %q", e.From, e.To, e.Name)
	}
	return fmt.Sprintf("unknown task %q", e.Name)
}

// InvalidDurationError reports a task with a negative duration.
type InvalidDurationError struct {
	Name     string
	Duration int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("task %q has negative duration %d", e.Name, e.Duration)
}

// CycleError reports a dependency cycle. Path holds the cycle in
// forward order with the first task repeated at the end.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Path, " -> "))
}

// NoPathError reports that no directed path exists between two tasks.
type NoPathError struct {
	From string
	To   string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path from %q to %q", e.From, e.To)
}
