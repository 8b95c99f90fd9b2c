package graph

import (
	"strings"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

type dependencyField struct {
	get func(m v1alpha1.Manifest) map[string]string

	// skipLocal drops link: and file: ranges from this field.
	skipLocal bool
}

// dependencyFields is the merge order. A name declared in several fields keeps
// the range from the last one.
var dependencyFields = []dependencyField{
	{get: func(m v1alpha1.Manifest) map[string]string { return m.Dependencies }},
	{get: func(m v1alpha1.Manifest) map[string]string { return m.DevDependencies }, skipLocal: true},
	{get: func(m v1alpha1.Manifest) map[string]string { return m.PeerDependencies }},
	{get: func(m v1alpha1.Manifest) map[string]string { return m.OptionalDependencies }},
}

func isLocalRange(declared string) bool {
	return strings.HasPrefix(declared, "link:") || strings.HasPrefix(declared, "file:")
}

// mergeDependencies flattens the four dependency maps of m into one.
func mergeDependencies(m v1alpha1.Manifest) map[string]string {
	all := make(map[string]string)
	for _, field := range dependencyFields {
		for name, declared := range field.get(m) {
			if field.skipLocal && isLocalRange(declared) {
				continue
			}
			all[name] = declared
		}
	}
	return all
}
