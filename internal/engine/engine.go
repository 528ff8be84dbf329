package engine

import (
	"context"
	"fmt"
	"os"

	"lintcrew/internal/checks"
	"lintcrew/internal/config"
	"lintcrew/internal/fileset"
	"lintcrew/internal/output"
)

// Exit code contract:
// 0 = all checks passed (or were skipped)
// 1 = at least one check failed or errored
// 2 = fatal error (configuration problem, run did not start)
const (
	ExitOK           = 0
	ExitChecksFailed = 1
	ExitFatal        = 2
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// filterByGroup keeps checks whose declared extensions intersect the group's
// extension set. Checks with no file-type filter run on everything and are
// not part of any one group, so a group restriction excludes them.
func filterByGroup(selected []checks.Check, groupExts []string) []checks.Check {
	want := make(map[string]bool, len(groupExts))
	for _, ext := range groupExts {
		want[ext] = true
	}
	var out []checks.Check
	for _, c := range selected {
		for _, ext := range c.Extensions {
			if want[ext] {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (e *Engine) resolveChecks(cfg *config.Config, classified *fileset.Classified) ([]checks.Check, error) {
	selected, err := checks.Resolve(cfg.Checks.Selector, cfg.Checks.Full)
	if err != nil {
		return nil, err
	}
	if cfg.Checks.Group != "" {
		exts, ok := classified.GroupExtensions(cfg.Checks.Group)
		if !ok {
			return nil, fmt.Errorf("unknown group: %s", cfg.Checks.Group)
		}
		selected = filterByGroup(selected, exts)
	}
	return selected, nil
}

func printPlan(plan []PlannedCheck) {
	for _, pc := range plan {
		kind := "tool"
		if !pc.Check.External() {
			kind = "custom"
		}
		if pc.Invoked() {
			fmt.Printf("%-24s %-6s %d file(s)\n", pc.Check.Name, kind, len(pc.Targets))
		} else {
			fmt.Printf("%-24s %-6s skipped: %s\n", pc.Check.Name, kind, pc.SkipReason)
		}
	}
}

// Run executes one full orchestration pass: classify the working tree,
// resolve and plan the checks, preflight the environment, run everything
// concurrently, and aggregate the verdict. Returns the process exit code.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	classified, err := fileset.Classify(cfg.Workspace.Root, cfg.Workspace.Groups, cfg.Workspace.Exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error classifying files: %v\n", err)
		return ExitFatal
	}
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Classified %d files.\n", classified.Len())
	}

	selected, err := e.resolveChecks(cfg, classified)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving checks: %v\n", err)
		return ExitFatal
	}
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Selected %d checks.\n", len(selected))
	}

	plan := BuildPlan(cfg, classified, selected)

	if cfg.Checks.List {
		printPlan(plan)
		return ExitOK
	}

	if !cfg.Checks.Force {
		if err := Preflight(plan); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitFatal
		}
	}

	scheduler, err := NewScheduler(cfg.Runtime.Concurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFatal
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return ExitFatal
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{Type: "run.started", Checks: len(plan), TotalFiles: classified.Len()})

	runCtx, cancel := context.WithTimeout(ctx, cfg.Runtime.Timeout)
	defer cancel()

	rc := &checks.RunContext{
		Files:   classified,
		Fix:     cfg.Checks.Fix,
		Verbose: cfg.Runtime.Verbose,
	}
	outcomes := scheduler.Execute(runCtx, plan, rc)

	report := Aggregate(outcomes)
	for _, o := range report.Outcomes {
		_ = outMgr.Write(o)
	}
	_ = outMgr.Write(output.Event{Type: "run.finished", Failing: report.Failing, ExitCode: report.ExitCode})
	return report.ExitCode
}
