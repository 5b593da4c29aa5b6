// Package fix is the rewrite engine: a registry of fixers, a dispatch table
// keyed by syntax-node kind, a single-pass tree walker that queues textual
// edits by source offset, and an edit engine that applies them to the token
// stream in reverse order.
package fix

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// Edit is a token-stream mutation queued against a source offset. The
// offset must be the start offset of a token; the edit runs with that
// token's live index as its anchor.
type Edit struct {
	Offset tokens.Offset
	Fn     tokens.EditFunc
}

// VisitFunc inspects one syntax node, with its chain of ancestors from the
// module root to the immediate parent, and returns any edits to queue. The
// ancestor slice is a snapshot; callbacks must not retain or modify it.
type VisitFunc func(state *State, node *sitter.Node, parents []*sitter.Node) []Edit

// Fixer is one independent transformation policy: a name, the minimum
// target version it applies from, an optional activation condition, and
// callbacks keyed by the node kinds they inspect. Fixers are immutable
// after registration.
type Fixer struct {
	name       string
	minVersion Version
	condition  func(*State) bool
	visitors   map[string][]VisitFunc
	kinds      []string // registration order, for deterministic dispatch
}

// NewFixer creates a fixer active from minVersion upwards.
func NewFixer(name string, minVersion Version) *Fixer {
	return &Fixer{
		name:       name,
		minVersion: minVersion,
		visitors:   make(map[string][]VisitFunc),
	}
}

// Name returns the fixer's registry name.
func (f *Fixer) Name() string { return f.name }

// When sets an activation condition; the fixer only runs on files whose
// state satisfies it.
func (f *Fixer) When(condition func(*State) bool) *Fixer {
	f.condition = condition
	return f
}

// On appends fn to the callbacks for the given node kind.
func (f *Fixer) On(kind string, fn VisitFunc) *Fixer {
	if _, seen := f.visitors[kind]; !seen {
		f.kinds = append(f.kinds, kind)
	}
	f.visitors[kind] = append(f.visitors[kind], fn)
	return f
}

// Registry is the catalogue of fixers for a run. It is built once at
// startup and read-only afterwards; tests construct their own.
type Registry struct {
	order  []*Fixer
	byName map[string]*Fixer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Fixer)}
}

// Add registers f. Registering two fixers under one name panics: a name
// collision is always an authoring bug and would otherwise silently drop
// one of the two.
func (r *Registry) Add(f *Fixer) {
	if _, dup := r.byName[f.name]; dup {
		panic(fmt.Sprintf("fix: duplicate fixer name %q", f.name))
	}
	r.byName[f.name] = f
	r.order = append(r.order, f)
}

// Has reports whether a fixer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Fixers returns the registered fixers in registration order.
func (r *Registry) Fixers() []*Fixer { return r.order }

// Names returns all registered fixer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
