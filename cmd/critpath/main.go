package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tnakagawa/critpath/internal/centrality"
	"github.com/tnakagawa/critpath/internal/critical"
	"github.com/tnakagawa/critpath/internal/model"
	"github.com/tnakagawa/critpath/internal/reporter"
	"github.com/tnakagawa/critpath/internal/traverse"
	"github.com/tnakagawa/critpath/internal/watch"
	"github.com/tnakagawa/critpath/internal/workflow"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "version":
		fmt.Printf("critpath %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`critpath - critical path analytics for workflow task graphs

Usage:
  critpath analyze [--file <path>] [--start <task>] [--top <k>] [--json]
  critpath watch --file <path> [--debounce-ms <n>] [--top <k>]
  critpath version
  critpath help

Without --file, the bundled rubber-to-metal bonding workflow is
analyzed. --start changes the BFS traversal origin (default: the
workflow's start task).`)
}

type analyzeOptions struct {
	file       string
	start      string
	topK       int
	jsonOutput bool
	debounceMs int
}

func parseAnalyzeFlags(args []string, usage string) analyzeOptions {
	opts := analyzeOptions{topK: 5}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--file":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--file requires a value")
				os.Exit(1)
			}
			i++
			opts.file = args[i]
		case "--start":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--start requires a value")
				os.Exit(1)
			}
			i++
			opts.start = args[i]
		case "--top":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--top requires a value")
				os.Exit(1)
			}
			i++
			k, err := strconv.Atoi(args[i])
			if err != nil || k < 1 {
				fmt.Fprintf(os.Stderr, "--top requires a positive integer, got %q\n", args[i])
				os.Exit(1)
			}
			opts.topK = k
		case "--debounce-ms":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--debounce-ms requires a value")
				os.Exit(1)
			}
			i++
			ms, err := strconv.Atoi(args[i])
			if err != nil || ms < 1 {
				fmt.Fprintf(os.Stderr, "--debounce-ms requires a positive integer, got %q\n", args[i])
				os.Exit(1)
			}
			opts.debounceMs = ms
		case "--json":
			opts.jsonOutput = true
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}
	return opts
}

func runAnalyze(args []string) {
	opts := parseAnalyzeFlags(args, "usage: critpath analyze [--file <path>] [--start <task>] [--top <k>] [--json]")

	wf, err := loadWorkflow(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	report, err := buildReport(wf, opts.start, opts.topK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	if opts.jsonOutput {
		if err := report.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
			os.Exit(1)
		}
		return
	}
	report.WriteText(os.Stdout)
}

func runWatch(args []string) {
	opts := parseAnalyzeFlags(args, "usage: critpath watch --file <path> [--debounce-ms <n>] [--top <k>]")
	if opts.file == "" {
		fmt.Fprintln(os.Stderr, "usage: critpath watch --file <path> [--debounce-ms <n>] [--top <k>]")
		os.Exit(1)
	}

	analyzeOnce := func() {
		wf, err := workflow.Load(opts.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		report, err := buildReport(wf, opts.start, opts.topK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		report.WriteText(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzeOnce()

	w := watch.New(opts.file, time.Duration(opts.debounceMs)*time.Millisecond, analyzeOnce)
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		os.Exit(1)
	}
}

func loadWorkflow(file string) (*model.Workflow, error) {
	if file == "" {
		return workflow.Builtin(), nil
	}
	return workflow.Load(file)
}

// buildReport runs the full analysis over one workflow: graph build,
// critical path, BFS traversal, and the two centrality rankings.
func buildReport(wf *model.Workflow, startOverride string, topK int) (*reporter.Report, error) {
	g, err := workflow.BuildGraph(wf)
	if err != nil {
		return nil, err
	}

	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	end, err := g.End()
	if err != nil {
		return nil, err
	}

	res, err := critical.Analyze(g, start, end)
	if err != nil {
		return nil, err
	}

	bfsFrom := start
	if startOverride != "" {
		bfsFrom = startOverride
	}
	edges, err := traverse.Edges(g, bfsFrom)
	if err != nil {
		return nil, err
	}

	return reporter.New(g, res, edges, centrality.Degree(g), centrality.Betweenness(g), topK), nil
}
