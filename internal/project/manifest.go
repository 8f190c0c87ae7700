package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is mcdoc.toml's decoded shape: a project name, a validator
// profile to assignability-check against, and a set of source roots each
// mapped onto a module-path prefix.
type Manifest struct {
	Name    string            `toml:"name"`
	Profile string            `toml:"profile"`
	Roots   map[string]string `toml:"roots"`
}

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Profile string `toml:"profile"`
	} `toml:"package"`
	Roots map[string]string `toml:"roots"`
}

// LoadManifest parses mcdoc.toml at path. A missing [roots] table defaults
// to a single anonymous root at the manifest's own directory.
func LoadManifest(path string) (*Manifest, error) {
	var cfg manifestFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m := &Manifest{
		Name:    strings.TrimSpace(cfg.Package.Name),
		Profile: strings.TrimSpace(cfg.Package.Profile),
		Roots:   cfg.Roots,
	}
	if len(m.Roots) == 0 {
		m.Roots = map[string]string{"": "."}
	}
	return m, nil
}

// RootDirs resolves every declared root to an absolute directory relative
// to the manifest's directory, keyed by its module-path prefix.
func (m *Manifest) RootDirs(manifestDir string) map[string]string {
	out := make(map[string]string, len(m.Roots))
	for prefix, rel := range m.Roots {
		out[prefix] = filepath.Join(manifestDir, filepath.FromSlash(rel))
	}
	return out
}
