package parse

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// LexError reports input the lexer cannot turn into a token stream.
type LexError struct {
	Offset tokens.Offset
}

func (e *LexError) Error() string {
	return fmt.Sprintf("cannot tokenize at line %d, column %d", e.Offset.Line, e.Offset.Col)
}

// Lex derives the full token stream for src from an already-parsed tree.
// Every byte of src is covered by exactly one token, so an unmutated stream
// serializes back to src. Zero-width block-end markers are injected after
// the indentation of each dedented line; the edit engine reorders them
// before applying edits.
func Lex(src []byte, tree *sitter.Tree) ([]tokens.Token, error) {
	leaves, err := collectLeaves(tree.RootNode())
	if err != nil {
		return nil, err
	}

	var ts []tokens.Token
	cursor := 0
	line, col := 1, 0

	for _, leaf := range leaves {
		start := int(leaf.StartByte())
		if start < cursor {
			continue
		}
		if start > cursor {
			ts = appendGap(ts, string(src[cursor:start]), line, col)
		}

		text := string(src[start:leaf.EndByte()])
		p := leaf.StartPoint()
		if allWhitespace(text) {
			// Hidden statement terminators surface as whitespace-shaped
			// leaves; route them through the gap splitter so newlines get
			// their own tokens.
			ts = appendGap(ts, text, int(p.Row)+1, int(p.Column))
		} else {
			ts = append(ts, tokens.Token{
				Kind:   classify(leaf, text),
				Src:    text,
				Offset: tokens.Offset{Line: int(p.Row) + 1, Col: int(p.Column)},
			})
		}

		cursor = int(leaf.EndByte())
		end := leaf.EndPoint()
		line, col = int(end.Row)+1, int(end.Column)
	}

	if cursor < len(src) {
		ts = appendGap(ts, string(src[cursor:]), line, col)
	}

	return injectDedents(ts), nil
}

// collectLeaves returns every zero-child node under root in source order.
func collectLeaves(root *sitter.Node) ([]*sitter.Node, error) {
	var leaves []*sitter.Node
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsMissing() {
			return nil, &LexError{Offset: StartOffset(n)}
		}

		count := int(n.ChildCount())
		if count == 0 {
			if n.StartByte() < n.EndByte() {
				leaves = append(leaves, n)
			}
			continue
		}
		for i := count - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}
	return leaves, nil
}

// classify maps a leaf node to a token kind.
func classify(n *sitter.Node, text string) tokens.Kind {
	switch n.Type() {
	case "identifier":
		return tokens.Name
	case "integer", "float":
		return tokens.Number
	case "comment":
		return tokens.Comment
	case "string", "string_start", "string_content", "string_end", "escape_sequence":
		return tokens.String
	case "line_continuation":
		return tokens.Whitespace
	}
	if !n.IsNamed() && !isWord(text) {
		return tokens.Op
	}
	// Keywords and named literal leaves (true, false, none).
	return tokens.Name
}

func isWord(s string) bool {
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func allWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return true
}

// appendGap splits the inter-leaf text starting at (line, col) into newline
// and whitespace tokens.
func appendGap(ts []tokens.Token, gap string, line, col int) []tokens.Token {
	run := 0 // start of the pending whitespace run
	flush := func(end int) {
		if run < end {
			ts = append(ts, tokens.Token{
				Kind:   tokens.Whitespace,
				Src:    gap[run:end],
				Offset: tokens.Offset{Line: line, Col: col},
			})
			col += end - run
		}
	}

	for i := 0; i < len(gap); i++ {
		switch gap[i] {
		case '\n':
			flush(i)
			ts = append(ts, tokens.Token{
				Kind:   tokens.Newline,
				Src:    "\n",
				Offset: tokens.Offset{Line: line, Col: col},
			})
			line, col = line+1, 0
			run = i + 1
		case '\r':
			flush(i)
			src := "\r"
			if i+1 < len(gap) && gap[i+1] == '\n' {
				src = "\r\n"
				i++
			}
			ts = append(ts, tokens.Token{
				Kind:   tokens.Newline,
				Src:    src,
				Offset: tokens.Offset{Line: line, Col: col},
			})
			line, col = line+1, 0
			run = i + 1
		}
	}
	flush(len(gap))
	return ts
}

// injectDedents appends a zero-width Dedent marker for every indentation
// level closed by a line. Markers are placed after the line's leading
// whitespace, mirroring the mis-ordering of the underlying lexer contract;
// the edit engine swaps each pair back before applying edits.
func injectDedents(ts []tokens.Token) []tokens.Token {
	out := make([]tokens.Token, 0, len(ts)+4)
	indents := []int{0}
	depth := 0 // bracket nesting; indentation is insignificant inside
	lineStart := true

	for i := 0; i < len(ts); i++ {
		if lineStart && depth == 0 {
			j := i
			width := 0
			if ts[j].Kind == tokens.Whitespace {
				width = len(ts[j].Src)
				j++
			}
			if j < len(ts) && startsLogicalLine(ts[j].Kind) {
				top := indents[len(indents)-1]
				switch {
				case width > top:
					indents = append(indents, width)
				case width < top:
					if j > i {
						out = append(out, ts[i])
					}
					off := tokens.Offset{Line: ts[j].Offset.Line}
					for len(indents) > 1 && width < indents[len(indents)-1] {
						indents = indents[:len(indents)-1]
						out = append(out, tokens.Token{Kind: tokens.Dedent, Offset: off})
					}
					i = j
				}
			}
		}

		t := ts[i]
		out = append(out, t)
		if t.Kind == tokens.Op {
			switch t.Src {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth > 0 {
					depth--
				}
			}
		}
		lineStart = t.Kind == tokens.Newline
	}

	var eof tokens.Offset
	if len(ts) > 0 {
		last := ts[len(ts)-1]
		eof = tokens.Offset{Line: last.Offset.Line + 1}
	}
	for len(indents) > 1 {
		indents = indents[:len(indents)-1]
		out = append(out, tokens.Token{Kind: tokens.Dedent, Offset: eof})
	}
	return out
}

// startsLogicalLine reports whether a token kind opens a statement line;
// blank and comment-only lines leave indentation levels untouched.
func startsLogicalLine(k tokens.Kind) bool {
	switch k {
	case tokens.Whitespace, tokens.Newline, tokens.Comment, tokens.Dedent:
		return false
	}
	return true
}
