// Package parse turns Python source into the two representations the fix
// engine consumes: a tree-sitter syntax tree for structural matching, and a
// flat token stream (see internal/tokens) for textual edits. Both come from
// the same bytes; a node's start offset always lands on a token boundary.
package parse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// ParseError reports syntactically invalid source. The caller is expected
// to leave such files untouched rather than rewrite a partial parse.
type ParseError struct {
	Offset tokens.Offset
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d", e.Offset.Line, e.Offset.Col)
}

// Parse parses src as Python. The returned tree must be closed by the
// caller. A tree containing any error or missing node is rejected whole.
func Parse(src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root.HasError() {
		off := firstErrorOffset(root)
		tree.Close()
		return nil, &ParseError{Offset: off}
	}

	return tree, nil
}

// firstErrorOffset locates the first error or missing node under root.
func firstErrorOffset(root *sitter.Node) tokens.Offset {
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsError() || n.IsMissing() {
			return StartOffset(n)
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}
	return StartOffset(root)
}

// StartOffset converts a node's start point to a token-stream offset.
func StartOffset(n *sitter.Node) tokens.Offset {
	p := n.StartPoint()
	return tokens.Offset{Line: int(p.Row) + 1, Col: int(p.Column)}
}

// EndOffset converts a node's end point (one past the last byte) to a
// token-stream offset.
func EndOffset(n *sitter.Node) tokens.Offset {
	p := n.EndPoint()
	return tokens.Offset{Line: int(p.Row) + 1, Col: int(p.Column)}
}

// Text returns the source text covered by n.
func Text(n *sitter.Node, src []byte) string {
	return n.Content(src)
}
