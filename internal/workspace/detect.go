package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

const (
	pnpmWorkspaceFile = "pnpm-workspace.yaml"
	lernaFile         = "lerna.json"
)

var defaultLernaPackages = []string{"packages/*"}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

type lernaConfig struct {
	Packages []string `json:"packages"`
}

// detectTool works out which package manager owns the workspace and the globs
// its members are declared with. The first match wins:
//
//	pnpm-workspace.yaml, lerna.json, bolt.workspaces, workspaces
//
// A workspace matching none of them is a single package.
func detectTool(dir string, root v1alpha1.Manifest) (v1alpha1.Tool, []string, error) {
	data, ok, err := readOptional(filepath.Join(dir, pnpmWorkspaceFile))
	if err != nil {
		return "", nil, err
	}
	if ok {
		var ws pnpmWorkspace
		if err := yaml.Unmarshal(data, &ws); err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", pnpmWorkspaceFile, err)
		}
		return v1alpha1.ToolPnpm, ws.Packages, nil
	}

	data, ok, err = readOptional(filepath.Join(dir, lernaFile))
	if err != nil {
		return "", nil, err
	}
	if ok {
		var lerna lernaConfig
		if err := json.Unmarshal(data, &lerna); err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", lernaFile, err)
		}
		if len(lerna.Packages) == 0 {
			return v1alpha1.ToolLerna, defaultLernaPackages, nil
		}
		return v1alpha1.ToolLerna, lerna.Packages, nil
	}

	if root.Bolt != nil && len(root.Bolt.Workspaces) > 0 {
		return v1alpha1.ToolBolt, root.Bolt.Workspaces, nil
	}
	if root.Workspaces != nil {
		return v1alpha1.ToolYarn, root.Workspaces.Packages, nil
	}
	return v1alpha1.ToolRoot, nil, nil
}

func readOptional(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, true, nil
}
