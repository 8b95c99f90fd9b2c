// Package config loads the .changeset/config.json document.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

const (
	// Dir is the directory, relative to the workspace root, holding the config.
	Dir = ".changeset"
	// FileName is the config file inside Dir.
	FileName = "config.json"
	// LegacyFileName is the version 1 config file.
	LegacyFileName = "config.js"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "FCSR_"

	// FlagBumpVersionsWithWorkspaceProtocolOnly overrides the config key of the same name.
	FlagBumpVersionsWithWorkspaceProtocolOnly = "bump-versions-with-workspace-protocol-only"
)

// envKeys maps the supported environment variables to config keys.
var envKeys = map[string]string{
	"FCSR_ACCESS":      "access",
	"FCSR_BASE_BRANCH": "baseBranch",
	"FCSR_BUMP_VERSIONS_WITH_WORKSPACE_PROTOCOL_ONLY": "bumpVersionsWithWorkspaceProtocolOnly",
}

// flagKeys maps CLI flags to config keys.
var flagKeys = map[string]string{
	FlagBumpVersionsWithWorkspaceProtocolOnly: "bumpVersionsWithWorkspaceProtocolOnly",
}

// Path returns the config file path for the workspace rooted at dir.
func Path(dir string) string {
	return filepath.Join(dir, Dir, FileName)
}

// Load reads the configuration of the workspace rooted at dir.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// A missing config file is not an error. flags may be nil.
func Load(dir string, flags *pflag.FlagSet) (*v1alpha1.Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path := Path(dir)
	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment variables (FCSR_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg v1alpha1.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func defaults() map[string]interface{} {
	d := v1alpha1.DefaultConfig()
	return map[string]interface{}{
		"$schema":                    d.Schema,
		"changelog":                  d.Changelog,
		"commit":                     d.Commit,
		"fixed":                      []interface{}{},
		"linked":                     []interface{}{},
		"access":                     string(d.Access),
		"baseBranch":                 d.BaseBranch,
		"updateInternalDependencies": string(d.UpdateInternalDependencies),
		"ignore":                     []interface{}{},
	}
}

// normalize folds accepted aliases into their canonical form.
func normalize(cfg *v1alpha1.Config) {
	if cfg.Access == v1alpha1.AccessPrivate {
		cfg.Access = v1alpha1.AccessRestricted
	}
	if cfg.LegacyBumpVersionWithWorkspaceProtocolOnly != nil {
		if *cfg.LegacyBumpVersionWithWorkspaceProtocolOnly {
			cfg.BumpVersionsWithWorkspaceProtocolOnly = true
		}
		cfg.LegacyBumpVersionWithWorkspaceProtocolOnly = nil
	}
}
