package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dacite/internal/diagfmt"
	"dacite/internal/driver"
	"dacite/internal/ui"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [flags] <directory>",
	Short: "Check every dacite source file under a directory",
	Long: `Diagnose walks a directory tree, lexing, parsing and compiling every
*.dt file in parallel, and reports a per-file verdict`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	diagnoseCmd.Flags().Bool("cache", false, "reuse verdicts for unchanged files via the disk cache")
	diagnoseCmd.Flags().String("ui", "off", "interactive progress display (auto|on|off)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	opts := driver.DiagnoseDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("dacite")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	var results []driver.DiagnoseFileResult
	if shouldUseTUI(mode) {
		results, err = diagnoseWithUI(cmd.Context(), dir, opts)
	} else {
		results, err = driver.DiagnoseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("diagnose failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
		ShowNotes:  true,
	}

	broken := 0
	for _, r := range results {
		if r.Bag != nil && r.Bag.Len() > 0 && r.FileSet != nil {
			diagfmt.Pretty(os.Stderr, r.Bag, r.FileSet, prettyOpts)
		}
		status := "ok"
		switch {
		case r.Broken:
			status = "broken"
			broken++
		case r.Cached:
			status = "cached"
		}
		fmt.Fprintf(os.Stdout, "%-8s %s\n", status, r.Path)
	}
	fmt.Fprintf(os.Stdout, "%d file(s), %d broken\n", len(results), broken)

	if broken > 0 {
		os.Exit(1)
	}
	return nil
}

type diagnoseOutcome struct {
	results []driver.DiagnoseFileResult
	err     error
}

// diagnoseWithUI runs the walk in a goroutine and feeds its progress events
// into a Bubble Tea program until the walk finishes.
func diagnoseWithUI(ctx context.Context, dir string, opts driver.DiagnoseDirOptions) ([]driver.DiagnoseFileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	events := make(chan driver.DiagnoseEvent, 256)
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.DiagnoseEvent) {
			events <- ev
		}
		results, err := driver.DiagnoseDir(ctx, dir, optsCopy)
		outcomeCh <- diagnoseOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(fmt.Sprintf("diagnosing %s", dir), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
