package fixers

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/fix"
	"github.com/muneeb706/django-upgrade-agent/internal/parse"
	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// adminAllowTags drops whole-line assignments of True to an `allow_tags`
// attribute. The attribute stopped doing anything in Django 2.0; the line
// is erased in full, newline and indentation included.
func adminAllowTags() *fix.Fixer {
	f := fix.NewFixer("admin_allow_tags", fix.Version{Major: 2, Minor: 0})
	f.On("assignment", visitAllowTagsAssign)
	return f
}

func visitAllowTagsAssign(state *fix.State, node *sitter.Node, parents []*sitter.Node) []fix.Edit {
	if !state.ImportedFrom("django.contrib", "admin") &&
		!state.ImportedFrom("django.contrib.gis", "admin") {
		return nil
	}

	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if left == nil || right == nil || node.ChildByFieldName("type") != nil {
		return nil
	}
	if left.Type() != "attribute" || right.Type() != "true" {
		return nil
	}
	attr := left.ChildByFieldName("attribute")
	if attr == nil || parse.Text(attr, state.Src) != "allow_tags" {
		return nil
	}

	return []fix.Edit{{
		Offset: parse.StartOffset(node),
		Fn:     tokens.Erase(parse.EndOffset(node)),
	}}
}
