package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Project projectSection `toml:"project"`
}

type projectSection struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// findDaciteToml walks from startDir to the filesystem root looking for a
// dacite.toml.
func findDaciteToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "dacite.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findDaciteToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return projectConfig{}, fmt.Errorf("%s: missing [project]", path)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [project].name", path)
	}
	if !meta.IsDefined("project", "entry") || strings.TrimSpace(cfg.Project.Entry) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [project].entry", path)
	}
	return cfg, nil
}

// resolveProjectEntry turns the manifest's entry field into a runnable .dt
// path.
func resolveProjectEntry(manifest *projectManifest) (string, error) {
	if manifest == nil {
		return "", fmt.Errorf("missing project manifest")
	}
	entryRel := strings.TrimSpace(manifest.Config.Project.Entry)
	entryPath := filepath.Join(manifest.Root, filepath.FromSlash(entryRel))
	info, err := os.Stat(entryPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [project].entry path does not exist: %s", manifest.Path, entryPath)
		}
		return "", fmt.Errorf("%s: failed to stat [project].entry: %w", manifest.Path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: [project].entry must be a .dt file", manifest.Path)
	}
	if filepath.Ext(entryPath) != ".dt" {
		return "", fmt.Errorf("%s: [project].entry must be a .dt file", manifest.Path)
	}
	return entryPath, nil
}
