package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dacite/internal/diagfmt"
	"dacite/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.dt",
	Short: "Tokenize a dacite source file",
	Long:  `Tokenize breaks down a dacite source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("emit-whitespace", false, "include whitespace tokens in the stream")
	tokenizeCmd.Flags().Bool("emit-comments", false, "include comment tokens in the stream")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	emitWhitespace, err := cmd.Flags().GetBool("emit-whitespace")
	if err != nil {
		return fmt.Errorf("failed to get emit-whitespace flag: %w", err)
	}

	emitComments, err := cmd.Flags().GetBool("emit-comments")
	if err != nil {
		return fmt.Errorf("failed to get emit-comments flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var trace io.Writer
	if traceFlag, _ := cmd.Root().PersistentFlags().GetBool("trace"); traceFlag {
		trace = os.Stderr
	}

	result, err := driver.Tokenize(filePath, driver.TokenizeOptions{
		MaxDiagnostics: maxDiagnostics,
		EmitWhitespace: emitWhitespace,
		EmitComments:   emitComments,
		Trace:          trace,
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
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
		diagfmt.DumpTokens(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		if err := diagfmt.DumpTokensJSON(os.Stdout, result.Tokens, result.FileSet); err != nil {
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
