package fix

import "fmt"

// Settings is the shared, read-only run configuration: the target version
// and the fixer selection after only/skip filtering.
type Settings struct {
	TargetVersion Version
	enabled       map[string]bool
}

// NewSettings resolves the only/skip selections against the registry. An
// unknown fixer name in either list is a configuration error, rejected
// before any file is processed.
func NewSettings(reg *Registry, target Version, only, skip []string) (*Settings, error) {
	for _, name := range append(append([]string{}, only...), skip...) {
		if !reg.Has(name) {
			return nil, fmt.Errorf("unknown fixer: %q", name)
		}
	}

	onlySet := make(map[string]bool, len(only))
	for _, name := range only {
		onlySet[name] = true
	}
	skipSet := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipSet[name] = true
	}

	enabled := make(map[string]bool)
	for _, f := range reg.Fixers() {
		if (len(onlySet) == 0 || onlySet[f.name]) && !skipSet[f.name] {
			enabled[f.name] = true
		}
	}

	return &Settings{TargetVersion: target, enabled: enabled}, nil
}

// Enabled reports whether the named fixer survived only/skip filtering.
func (s *Settings) Enabled(name string) bool { return s.enabled[name] }
