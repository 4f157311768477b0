package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new dacite project",
	Long: `Initialize a new dacite project by creating a project manifest (dacite.toml)
and an entry point (main.dt). If [path|name] is omitted, initializes the
current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "dacite-project"
	}

	manifestPath := filepath.Join(target, "dacite.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.dt")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainDT(name)), 0o600); err != nil {
			return fmt.Errorf("failed to write main.dt: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized dacite project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - dacite.toml\n")
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - main.dt\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - main.dt (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest used as a project
// marker.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# Dacite project manifest
[project]
name = "%s"
version = "0.1.0"
entry = "main.dt"
`, name)
}

func defaultMainDT(name string) string {
	return fmt.Sprintf(`package %s;

fn main() i32 {
    return 1 + 2;
}
`, manifestPackageName(name))
}

// manifestPackageName squeezes a directory name into an identifier the
// parser will accept.
func manifestPackageName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && b.Len() > 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}
