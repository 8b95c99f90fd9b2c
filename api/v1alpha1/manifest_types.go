package v1alpha1

import (
	"encoding/json"
	"fmt"
)

// Manifest is the subset of package.json the release tooling reads.
type Manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string `json:"peerDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
	Resolutions          map[string]string `json:"resolutions,omitempty"`
	Private              *bool             `json:"private,omitempty"`
	PublishConfig        *PublishConfig    `json:"publishConfig,omitempty"`
	Workspaces           *Workspaces       `json:"workspaces,omitempty"`
	Bolt                 *BoltConfig       `json:"bolt,omitempty"`
}

type PublishConfig struct {
	Access    AccessType `json:"access,omitempty"`
	Directory string     `json:"directory,omitempty"`
	Registry  string     `json:"registry,omitempty"`
}

type BoltConfig struct {
	Workspaces []string `json:"workspaces,omitempty"`
}

// Workspaces holds the member globs declared in a root manifest.
//
// Both the array form and the yarn object form ({"packages": [...]}) are accepted;
// marshalling always produces the array form.
type Workspaces struct {
	Packages []string
}

func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		w.Packages = list
		return nil
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("workspaces: expected an array or an object with packages: %w", err)
	}
	w.Packages = obj.Packages
	return nil
}

func (w Workspaces) MarshalJSON() ([]byte, error) {
	if w.Packages == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.Packages)
}

// IsPrivate reports whether the manifest sets "private": true.
func (m Manifest) IsPrivate() bool {
	return m.Private != nil && *m.Private
}

// Package is a manifest plus the directory it was read from.
//
// Identity is by Manifest.Name.
type Package struct {
	Manifest Manifest `json:"packageJson"`
	Dir      string   `json:"dir"`
}

func (p Package) Name() string { return p.Manifest.Name }

// Workspace is the root package and its members.
type Workspace struct {
	Tool     Tool      `json:"tool"`
	Root     Package   `json:"root"`
	Packages []Package `json:"packages"`
}

// All returns the root followed by every member, in declaration order.
func (w Workspace) All() []Package {
	all := make([]Package, 0, len(w.Packages)+1)
	all = append(all, w.Root)
	all = append(all, w.Packages...)
	return all
}

// Names returns the names of the root and every member, in the order of All.
func (w Workspace) Names() []string {
	names := make([]string, 0, len(w.Packages)+1)
	for _, pkg := range w.All() {
		names = append(names, pkg.Name())
	}
	return names
}
