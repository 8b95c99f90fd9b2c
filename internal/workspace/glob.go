package workspace

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	manifestFile = "package.json"
	nodeModules  = "node_modules"
)

// expandPatterns returns the slash-separated directories below fsys that hold a
// package.json and match the patterns. Patterns prefixed with "!" exclude.
// The result is sorted.
func expandPatterns(fsys fs.FS, patterns []string) ([]string, error) {
	var includes, excludes []string
	for _, p := range patterns {
		if neg, ok := strings.CutPrefix(p, "!"); ok {
			excludes = append(excludes, cleanPattern(neg))
			continue
		}
		includes = append(includes, cleanPattern(p))
	}

	dirs := sets.New[string]()
	for _, pattern := range includes {
		matches, err := doublestar.Glob(fsys, path.Join(pattern, manifestFile))
		if err != nil {
			return nil, fmt.Errorf("expand workspace pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			dir := path.Dir(m)
			if dir == "." || inNodeModules(dir) {
				continue
			}
			excluded, err := matchesAny(excludes, dir)
			if err != nil {
				return nil, err
			}
			if !excluded {
				dirs.Insert(dir)
			}
		}
	}
	return sets.List(dirs), nil
}

func cleanPattern(p string) string {
	return path.Clean(strings.TrimPrefix(p, "./"))
}

func inNodeModules(dir string) bool {
	for _, segment := range strings.Split(dir, "/") {
		if segment == nodeModules {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, dir string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, dir)
		if err != nil {
			return false, fmt.Errorf("expand workspace pattern %q: %w", "!"+pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
