package fixers

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/fix"
	"github.com/muneeb706/django-upgrade-agent/internal/parse"
	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// formatHTML rewrites format_html("...".format(x)) to format_html("...", x).
// Passing a pre-formatted string as the template is deprecated in Django
// 5.0 because it defeats the escaping format_html exists for.
func formatHTML() *fix.Fixer {
	f := fix.NewFixer("format_html", fix.Version{Major: 5, Minor: 0})
	f.On("call", visitFormatHTMLCall)
	return f
}

func visitFormatHTMLCall(state *fix.State, node *sitter.Node, parents []*sitter.Node) []fix.Edit {
	if !state.ImportedFrom("django.utils.html", "format_html") {
		return nil
	}

	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != "identifier" || parse.Text(fn, state.Src) != "format_html" {
		return nil
	}

	// Template argument only: a single positional call to str.format on a
	// plain string literal.
	args := node.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() != 1 {
		return nil
	}
	inner := args.NamedChild(0)
	if inner.Type() != "call" {
		return nil
	}
	innerFn := inner.ChildByFieldName("function")
	if innerFn == nil || innerFn.Type() != "attribute" {
		return nil
	}
	recv := innerFn.ChildByFieldName("object")
	attr := innerFn.ChildByFieldName("attribute")
	if recv == nil || attr == nil || parse.Text(attr, state.Src) != "format" {
		return nil
	}
	if recv.Type() != "string" || !plainString(recv, state.Src) {
		return nil
	}

	return []fix.Edit{{
		Offset: parse.StartOffset(node),
		Fn:     rewriteStrFormat(parse.EndOffset(inner)),
	}}
}

// plainString rejects f-string and bytes literals; only ordinary (possibly
// raw) string constants have a .format worth unrolling.
func plainString(str *sitter.Node, src []byte) bool {
	if int(str.NamedChildCount()) == 0 {
		return true
	}
	prefix := strings.ToLower(parse.Text(str.NamedChild(0), src))
	if str.NamedChild(0).Type() != "string_start" {
		return false
	}
	return !strings.ContainsAny(prefix, "bf")
}

// rewriteStrFormat drops the `.format(` and the matching close paren of the
// inner call, then splices `, ` so the format arguments become arguments of
// the enclosing format_html call. The anchor is the format_html name token;
// end is where the inner call's text stops.
func rewriteStrFormat(end tokens.Offset) tokens.EditFunc {
	return func(l *tokens.List, i int) {
		openStart := tokens.Find(l, i, tokens.Op, ".")
		openEnd := tokens.Find(l, openStart, tokens.Op, "(")

		cpStart := tokens.FindLastBefore(l, openEnd, end)
		cpEnd := cpStart
		if tokens.AloneOnLine(l, cpStart, cpEnd) {
			cpStart--
			cpEnd++
		}

		l.Delete(cpStart, cpEnd+1)
		l.Delete(openStart, openEnd+1)
		tokens.Insert(l, openStart, ", ")
	}
}
