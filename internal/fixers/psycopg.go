package fixers

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/fix"
	"github.com/muneeb706/django-upgrade-agent/internal/parse"
	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// moduleRenames maps modules retired by the psycopg 3 migration to their
// replacements.
var moduleRenames = map[string]string{
	"psycopg2": "psycopg",
}

// psycopg2ToPsycopg3 rewrites psycopg2 imports to psycopg, in both
// `import psycopg2 [as x]` and `from psycopg2 import y` forms.
func psycopg2ToPsycopg3() *fix.Fixer {
	f := fix.NewFixer("psycopg2_to_psycopg3", fix.Version{Major: 3, Minor: 0})
	f.On("import_statement", visitPsycopgImport)
	f.On("import_from_statement", visitPsycopgImportFrom)
	return f
}

func visitPsycopgImport(state *fix.State, node *sitter.Node, parents []*sitter.Node) []fix.Edit {
	var edits []fix.Edit
	for i := 0; i < int(node.NamedChildCount()); i++ {
		name := node.NamedChild(i)
		if name.Type() == "aliased_import" {
			name = name.ChildByFieldName("name")
		}
		if name == nil || name.Type() != "dotted_name" {
			continue
		}
		old := parse.Text(name, state.Src)
		if repl, ok := moduleRenames[old]; ok {
			edits = append(edits, fix.Edit{
				Offset: parse.StartOffset(node),
				Fn:     tokens.ReplaceName(old, repl),
			})
		}
	}
	return edits
}

func visitPsycopgImportFrom(state *fix.State, node *sitter.Node, parents []*sitter.Node) []fix.Edit {
	mod := node.ChildByFieldName("module_name")
	if mod == nil || mod.Type() != "dotted_name" {
		return nil
	}
	old := parse.Text(mod, state.Src)
	repl, ok := moduleRenames[old]
	if !ok {
		return nil
	}
	return []fix.Edit{{
		Offset: parse.StartOffset(node),
		Fn:     tokens.ReplaceName(old, repl),
	}}
}
