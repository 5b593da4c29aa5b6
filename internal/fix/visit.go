package fix

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/parse"
	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// Visit walks the tree exactly once, pre-order, invoking every active
// callback for each node's kind and collecting the edits they queue into
// an offset-indexed multimap. Edits at one offset keep callback order.
func Visit(tree *sitter.Tree, reg *Registry, state *State) map[tokens.Offset][]tokens.EditFunc {
	table := buildDispatch(reg, state)
	queued := make(map[tokens.Offset][]tokens.EditFunc)
	if len(table) == 0 {
		return queued
	}

	type frame struct {
		node    *sitter.Node
		parents []*sitter.Node
	}
	stack := []frame{{node: tree.RootNode()}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := fr.node

		for _, fn := range table[node.Type()] {
			for _, e := range fn(state, node, fr.parents) {
				queued[e.Offset] = append(queued[e.Offset], e.Fn)
			}
		}

		if node.Type() == "import_from_statement" && len(fr.parents) == 1 {
			trackFromImport(state, node)
		}

		// Each child gets its own ancestor snapshot; a callback holding
		// one cannot disturb the traversal of its siblings.
		subparents := make([]*sitter.Node, len(fr.parents)+1)
		copy(subparents, fr.parents)
		subparents[len(fr.parents)] = node

		// Reverse push so popping yields declaration order.
		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: node.NamedChild(i), parents: subparents})
		}
	}

	return queued
}

// trackFromImport records the names a top-level `from X import ...` brings
// in, for X in the django/unittest module families. Aliased names and
// wildcards are ignored: they do not bind the original name.
func trackFromImport(state *State, node *sitter.Node) {
	mod := node.ChildByFieldName("module_name")
	if mod == nil || mod.Type() != "dotted_name" {
		return // relative import
	}
	module := parse.Text(mod, state.Src)
	if module != "django" && module != "unittest" && !strings.HasPrefix(module, "django.") {
		return
	}

	var names []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		c := node.NamedChild(i)
		if c.StartByte() == mod.StartByte() || c.Type() != "dotted_name" {
			continue
		}
		names = append(names, parse.Text(c, state.Src))
	}
	if len(names) > 0 {
		state.recordImport(module, names)
	}
}
