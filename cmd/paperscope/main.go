package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ddc002021/hackathon/internal/config"
	"github.com/ddc002021/hackathon/internal/export"
	"github.com/ddc002021/hackathon/internal/present"
	"github.com/ddc002021/hackathon/internal/source"
	"github.com/ddc002021/hackathon/internal/trace"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Snapshot    string
	QueryResult string
	Trace       string
	View        string
	Format      string
	Backend     string
	Query       string
	Feature     string
	Walkthrough string
	Verbose     bool
	Version     bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("paperscope", flag.ContinueOnError)
	fs.StringVar(&flags.Snapshot, "snapshot", "", "path to a graph snapshot JSON file")
	fs.StringVar(&flags.QueryResult, "query-result", "", "path to a query result JSON file to highlight")
	fs.StringVar(&flags.Trace, "trace", "", "path to an execution trace JSON file")
	fs.StringVar(&flags.View, "view", "features", "presentation view: features, dependencies, cross_modal")
	fs.StringVar(&flags.Format, "format", "mermaid", "output format: mermaid, json, overlay, stats")
	fs.StringVar(&flags.Backend, "backend", "", "analysis backend base URL (overrides config and env)")
	fs.StringVar(&flags.Query, "query", "", "run a query against the backend and highlight its result")
	fs.StringVar(&flags.Feature, "feature", "", "fetch and print detail for a feature id")
	fs.StringVar(&flags.Walkthrough, "walkthrough", "", "run a function walkthrough and render its trace")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelWarn
	if flags.Verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	backend := flags.Backend
	if backend == "" {
		backend = cfg.BackendURL
	}
	if backend == "" {
		backend = os.Getenv("PAPERSCOPE_BACKEND_URL")
	}

	ctx := context.Background()

	switch {
	case flags.Trace != "":
		return renderTraceFile(flags.Trace, flags.Format)
	case flags.Walkthrough != "":
		return runWalkthrough(ctx, backend, flags.Walkthrough, flags.Format, logger)
	case flags.Feature != "":
		return printFeature(ctx, backend, flags.Feature, logger)
	case flags.Snapshot != "" || flags.Query != "":
		return renderGraph(ctx, backend, flags, cfg, logger)
	default:
		fs.Usage()
		return fmt.Errorf("nothing to do: pass -snapshot, -trace, -feature, or -walkthrough")
	}
}

// renderGraph loads a snapshot (from file or backend), optionally a
// query result, derives styled state through the engine, and prints it.
func renderGraph(ctx context.Context, backend string, flags cliFlags, cfg *config.ProjectConfig, logger *slog.Logger) error {
	view := present.View(flags.View)

	var snap present.Snapshot
	switch {
	case flags.Snapshot != "":
		var wire source.WireGraph
		if err := readJSON(flags.Snapshot, &wire); err != nil {
			return err
		}
		snap = source.DecodeSnapshot(wire, view)
	case backend != "":
		client := source.NewHTTPClient(backend, source.WithLogger(logger))
		var err error
		snap, err = client.FetchGraph(ctx, view)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("no snapshot file and no backend configured")
	}

	hl := present.HighlightState{}
	if flags.QueryResult != "" {
		var res source.QueryResult
		if err := readJSON(flags.QueryResult, &res); err != nil {
			return err
		}
		hl = source.Highlight(res)
	} else if flags.Query != "" {
		if backend == "" {
			return fmt.Errorf("-query requires a backend")
		}
		client := source.NewHTTPClient(backend, source.WithLogger(logger))
		res, err := client.Query(ctx, flags.Query)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, res.Answer)
		hl = source.Highlight(*res)
	}

	engine := present.NewEngine(nil,
		present.WithLogger(logger),
		present.WithLockDuration(cfg.LockDuration()),
	)
	defer engine.Close()

	engine.ApplySnapshot(snap, hl, view)
	state := engine.State()

	switch flags.Format {
	case "mermaid":
		fmt.Print(export.GenerateMermaid(state))
	case "json":
		out, err := export.ExportState(state, time.Now()).Marshal()
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "overlay":
		for i, panel := range state.Panels {
			fmt.Printf("Path %d:\n%s\n", i+1, present.FormatPanel(panel))
		}
		if len(state.Panels) == 0 {
			fmt.Println("no paths")
		}
	case "stats":
		stats := present.Stats(snap)
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q", flags.Format)
	}
	return nil
}

// renderTraceFile builds and prints the execution-trace subgraph from
// a trace result file.
func renderTraceFile(path, format string) error {
	var result trace.Result
	if err := readJSON(path, &result); err != nil {
		return err
	}
	return renderTrace(result, format)
}

func renderTrace(result trace.Result, format string) error {
	nodes, edges := trace.Build(result)

	switch format {
	case "mermaid":
		fmt.Print(export.GenerateTraceMermaid(nodes, edges))
	case "json":
		out, err := json.MarshalIndent(map[string]any{
			"nodes": nodes,
			"edges": edges,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q for trace output", format)
	}
	return nil
}

// runWalkthrough asks the backend to walk through a function and
// renders the returned trace graph.
func runWalkthrough(ctx context.Context, backend, functionName, format string, logger *slog.Logger) error {
	if backend == "" {
		return fmt.Errorf("-walkthrough requires a backend")
	}
	client := source.NewHTTPClient(backend, source.WithLogger(logger))
	res, err := client.Walkthrough(ctx, functionName)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("walkthrough failed: %s", res.Error)
	}
	if res.Walkthrough != "" {
		fmt.Fprintln(os.Stderr, res.Walkthrough)
	}
	if res.TraceGraph == nil {
		fmt.Println("no trace")
		return nil
	}
	return renderTrace(*res.TraceGraph, format)
}

// printFeature fetches the detail overlay payload for one node.
func printFeature(ctx context.Context, backend, featureID string, logger *slog.Logger) error {
	if backend == "" {
		return fmt.Errorf("-feature requires a backend")
	}
	client := source.NewHTTPClient(backend, source.WithLogger(logger))
	detail, err := client.FeatureDetails(ctx, featureID)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
