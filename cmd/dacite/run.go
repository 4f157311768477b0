package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dacite/internal/diagfmt"
	"dacite/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.dt]",
	Short: "Compile and execute a dacite program",
	Long: `Run compiles a dacite source file to bytecode and executes it on the VM.
With no argument it runs the [project].entry from the nearest dacite.toml,
falling back to a built-in sample program.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecution,
}

func init() {
	runCmd.Flags().Bool("trace-compile", false, "disassemble the chunk after compilation")
	runCmd.Flags().Bool("trace-exec", false, "trace VM execution per instruction")
	runCmd.Flags().Bool("check", false, "compile only, skip execution")
}

const defaultSource = `package sample;

fn main() i32 {
    return 1 + 2;
}
`

func runExecution(cmd *cobra.Command, args []string) error {
	traceCompile, err := cmd.Flags().GetBool("trace-compile")
	if err != nil {
		return fmt.Errorf("failed to get trace-compile flag: %w", err)
	}
	traceExec, err := cmd.Flags().GetBool("trace-exec")
	if err != nil {
		return fmt.Errorf("failed to get trace-exec flag: %w", err)
	}
	checkOnly, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if traceFlag, _ := cmd.Root().PersistentFlags().GetBool("trace"); traceFlag {
		traceCompile = true
		traceExec = true
	}

	opts := driver.RunOptions{MaxDiagnostics: maxDiagnostics}
	if traceCompile {
		opts.TraceCompile = os.Stderr
	}
	if traceExec {
		opts.TraceExec = os.Stderr
	}

	var result *driver.RunResult
	switch {
	case len(args) == 1:
		result, err = runTarget(args[0], checkOnly, opts)
	default:
		result, err = runDefaultTarget(checkOnly, opts)
	}
	if err != nil {
		return err
	}

	if result.Parse.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Parse.Bag, result.Parse.FileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}
	if result.CompileErr != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", result.CompileErr)
	}
	if result.RuntimeErr != "" {
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", result.RuntimeErr)
	}
	if result.HasErrors() {
		os.Exit(1)
	}

	if !checkOnly {
		fmt.Fprintln(os.Stdout, result.Value)
	}
	return nil
}

func runTarget(path string, checkOnly bool, opts driver.RunOptions) (*driver.RunResult, error) {
	if checkOnly {
		checked, err := driver.Check(path, opts)
		if err != nil {
			return nil, err
		}
		return &driver.RunResult{CheckResult: *checked}, nil
	}
	return driver.Run(path, opts)
}

// runDefaultTarget resolves the implicit run target: the manifest entry if a
// dacite.toml is in scope, the embedded sample program otherwise.
func runDefaultTarget(checkOnly bool, opts driver.RunOptions) (*driver.RunResult, error) {
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}
	if ok {
		entry, err := resolveProjectEntry(manifest)
		if err != nil {
			return nil, err
		}
		return runTarget(entry, checkOnly, opts)
	}
	if checkOnly {
		checked, err := driver.CheckBytes("sample.dt", []byte(defaultSource), opts)
		if err != nil {
			return nil, err
		}
		return &driver.RunResult{CheckResult: *checked}, nil
	}
	return driver.RunBytes("sample.dt", []byte(defaultSource), opts)
}
