// Package fixers holds the catalogue of rewrite fixers. Each fixer is an
// independent policy registered under its own name; the engine in
// internal/fix decides which of them run for a given target version and
// file.
package fixers

import "github.com/muneeb706/django-upgrade-agent/internal/fix"

// Default returns a registry with the full catalogue.
func Default() *fix.Registry {
	r := fix.NewRegistry()
	Register(r)
	return r
}

// Register adds every fixer to r in catalogue order.
func Register(r *fix.Registry) {
	r.Add(adminAllowTags())
	r.Add(formatHTML())
	r.Add(psycopg2ToPsycopg3())
}
