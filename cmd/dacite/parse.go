package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dacite/internal/diagfmt"
	"dacite/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.dt",
	Short: "Parse a dacite source file and output its AST",
	Long:  `Parse analyzes a dacite source file and outputs its abstract syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}

	switch format {
	case "pretty":
		diagfmt.DumpAST(os.Stdout, result.Builder, result.Program)
	case "json":
		if err := diagfmt.DumpASTJSON(os.Stdout, result.Builder, result.Program); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
