// Package workspace discovers the packages of a JavaScript monorepo.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

// maxConcurrentReads bounds the number of manifests read at once.
const maxConcurrentReads = 16

// Load reads the workspace rooted at dir: the root manifest, the package
// manager that owns it, and every member manifest. Members are sorted by
// directory. Package directories are absolute.
func Load(ctx context.Context, dir string) (v1alpha1.Workspace, error) {
	logger := log.FromContext(ctx)

	abs, err := filepath.Abs(dir)
	if err != nil {
		return v1alpha1.Workspace{}, fmt.Errorf("resolve workspace dir %s: %w", dir, err)
	}

	rootManifest, err := readManifest(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v1alpha1.Workspace{}, fmt.Errorf("%w: %s", ErrNoRootManifest, abs)
		}
		return v1alpha1.Workspace{}, err
	}
	root := v1alpha1.Package{Manifest: rootManifest, Dir: abs}

	tool, patterns, err := detectTool(abs, rootManifest)
	if err != nil {
		return v1alpha1.Workspace{}, err
	}
	logger.V(1).Info("detected workspace", "dir", abs, "tool", tool, "patterns", patterns)

	dirs, err := expandPatterns(os.DirFS(abs), patterns)
	if err != nil {
		return v1alpha1.Workspace{}, err
	}

	members, err := readMembers(ctx, abs, dirs)
	if err != nil {
		return v1alpha1.Workspace{}, err
	}

	ws := v1alpha1.Workspace{Tool: tool, Root: root, Packages: members}
	if err := checkNames(ws); err != nil {
		return v1alpha1.Workspace{}, err
	}
	logger.V(1).Info("loaded workspace", "packages", len(members))
	return ws, nil
}

func readMembers(ctx context.Context, root string, dirs []string) ([]v1alpha1.Package, error) {
	members := make([]v1alpha1.Package, len(dirs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentReads)
	for i, rel := range dirs {
		i, rel := i, rel
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir := filepath.Join(root, filepath.FromSlash(rel))
			m, err := readManifest(dir)
			if err != nil {
				return err
			}
			members[i] = v1alpha1.Package{Manifest: m, Dir: dir}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return members, nil
}

func readManifest(dir string) (v1alpha1.Manifest, error) {
	path := filepath.Join(dir, manifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return v1alpha1.Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	var m v1alpha1.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return v1alpha1.Manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func checkNames(ws v1alpha1.Workspace) error {
	seen := make(map[string]string, len(ws.Packages)+1)
	for _, pkg := range ws.All() {
		if pkg.Name() == "" {
			return fmt.Errorf("%w: %s", ErrMissingName, filepath.Join(pkg.Dir, manifestFile))
		}
		if other, ok := seen[pkg.Name()]; ok {
			return fmt.Errorf("%w: %q in %s and %s", ErrDuplicatePackage, pkg.Name(), other, pkg.Dir)
		}
		seen[pkg.Name()] = pkg.Dir
	}
	return nil
}
