package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig mirrors the single [package] table solstice.toml carries
// (spec.md has no file format or persisted state of its own; this is
// purely CLI ergonomics layered on top, grounded on the teacher's
// surge.toml/projectManifest pattern).
type projectConfig struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

func findSolsticeToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, "solstice.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectConfig(startDir string) (*projectConfig, bool, error) {
	path, ok, err := findSolsticeToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, err
	}
	return &cfg, true, nil
}
