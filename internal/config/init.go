package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

// Init writes the default config for the workspace rooted at dir and returns
// the path written.
func Init(dir string) (string, error) {
	path := Path(dir)
	if exists, err := fileExists(path); err != nil {
		return "", err
	} else if exists {
		return "", ErrAlreadyInitialized
	}
	if exists, err := fileExists(filepath.Join(dir, Dir, LegacyFileName)); err != nil {
		return "", err
	} else if exists {
		return "", ErrLegacyConfig
	}

	data, err := json.MarshalIndent(v1alpha1.DefaultConfig(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}
