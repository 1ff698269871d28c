package tsconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the generated file inside the project directory.
const FileName = "tsconfig.json"

var ErrExists = errors.New("tsconfig.json already exists")

// ProjectDir resolves the project name against cwd. "." means cwd itself and
// an absolute name is used as is.
func ProjectDir(cwd, name string) string {
	if name == "" || name == "." {
		return cwd
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(cwd, name)
}

// Write creates dir if needed and writes cfg to dir/tsconfig.json. An existing
// file is only replaced when force is set. It returns the written path.
func Write(dir string, cfg Config, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating project directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w in %s (use --force to overwrite)", ErrExists, dir)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %q: %w", path, err)
		}
	}

	data, err := Render(cfg)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	return path, nil
}
