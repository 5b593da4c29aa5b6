package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(toks ...Token) *List {
	return NewList(toks)
}

func tok(kind Kind, src string, line, col int) Token {
	return Token{Kind: kind, Src: src, Offset: Offset{Line: line, Col: col}}
}

func TestOffsetBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Offset
		want bool
	}{
		{"earlier line", Offset{1, 9}, Offset{2, 0}, true},
		{"same line earlier col", Offset{3, 2}, Offset{3, 5}, true},
		{"equal", Offset{3, 5}, Offset{3, 5}, false},
		{"later", Offset{4, 0}, Offset{3, 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestListSplice(t *testing.T) {
	l := list(
		tok(Name, "a", 1, 0),
		tok(Op, "=", 1, 2),
		tok(Number, "1", 1, 4),
	)

	l.Insert(1, Token{Kind: Code, Src: " "})
	require.Equal(t, 4, l.Len())
	assert.Equal(t, "a =1", l.Source())

	l.Delete(1, 3)
	assert.Equal(t, "a1", l.Source())

	l.Set(0, tok(Name, "b", 1, 0))
	assert.Equal(t, "b1", l.Source())

	l.Swap(0, 1)
	assert.Equal(t, "1b", l.Source())
}

func TestSourceRoundTrip(t *testing.T) {
	l := list(
		tok(Name, "x", 1, 0),
		tok(Whitespace, " ", 1, 1),
		tok(Op, "=", 1, 2),
		tok(Whitespace, " ", 1, 3),
		tok(String, "\"y\"", 1, 4),
		tok(Newline, "\n", 1, 7),
		tok(Dedent, "", 2, 0),
	)
	assert.Equal(t, "x = \"y\"\n", l.Source())
}

func TestFind(t *testing.T) {
	l := list(
		tok(Name, "f", 1, 0),
		tok(Op, "(", 1, 1),
		tok(Op, ".", 1, 2),
		tok(Op, "(", 1, 3),
	)
	assert.Equal(t, 2, Find(l, 0, Op, "."))
	assert.Equal(t, 3, Find(l, 3, Op, "("))
}

func TestFindLastBefore(t *testing.T) {
	l := list(
		tok(Name, "f", 1, 0),
		tok(Op, "(", 1, 1),
		tok(Name, "x", 1, 2),
		tok(Op, ")", 1, 3),
		tok(Op, ")", 1, 4),
		tok(Newline, "\n", 1, 5),
	)

	// A node ending just past the first close paren covers tokens 0..3.
	got := FindLastBefore(l, 0, Offset{Line: 1, Col: 4})
	assert.Equal(t, 3, got)
}

func TestFindLastBeforeSkipsZeroWidth(t *testing.T) {
	l := list(
		tok(Name, "x", 1, 0),
		tok(Dedent, "", 1, 1),
		tok(Name, "y", 2, 0),
	)
	got := FindLastBefore(l, 0, Offset{Line: 1, Col: 5})
	assert.Equal(t, 0, got)
}

func TestAloneOnLine(t *testing.T) {
	l := list(
		tok(Name, "x", 1, 0),
		tok(Newline, "\n", 1, 1),
		tok(Whitespace, "    ", 2, 0),
		tok(Op, ")", 2, 4),
		tok(Newline, "\n", 2, 5),
	)
	assert.True(t, AloneOnLine(l, 3, 3))
	assert.False(t, AloneOnLine(l, 0, 0))
}

func TestErase(t *testing.T) {
	// class A:\n    x.y = True\n
	l := list(
		tok(Name, "class", 1, 0),
		tok(Whitespace, " ", 1, 5),
		tok(Name, "A", 1, 6),
		tok(Op, ":", 1, 7),
		tok(Newline, "\n", 1, 8),
		tok(Whitespace, "    ", 2, 0),
		tok(Name, "x", 2, 4),
		tok(Op, ".", 2, 5),
		tok(Name, "y", 2, 6),
		tok(Whitespace, " ", 2, 7),
		tok(Op, "=", 2, 8),
		tok(Whitespace, " ", 2, 9),
		tok(Name, "True", 2, 10),
		tok(Newline, "\n", 2, 14),
		tok(Dedent, "", 3, 0),
	)

	erase := Erase(Offset{Line: 2, Col: 14})
	erase(l, 6) // anchor on "x"

	assert.Equal(t, "class A:\n", l.Source())
}

func TestEraseTrailingComment(t *testing.T) {
	l := list(
		tok(Name, "x", 1, 0),
		tok(Whitespace, " ", 1, 1),
		tok(Op, "=", 1, 2),
		tok(Whitespace, " ", 1, 3),
		tok(Name, "True", 1, 4),
		tok(Whitespace, "  ", 1, 8),
		tok(Comment, "# legacy", 1, 10),
		tok(Newline, "\n", 1, 18),
	)

	erase := Erase(Offset{Line: 1, Col: 8})
	erase(l, 0)

	assert.Equal(t, "", l.Source())
}

func TestReplaceName(t *testing.T) {
	l := list(
		tok(Name, "import", 1, 0),
		tok(Whitespace, " ", 1, 6),
		tok(Name, "psycopg2", 1, 7),
	)

	ReplaceName("psycopg2", "psycopg")(l, 0)
	assert.Equal(t, "import psycopg", l.Source())
}

func TestReplaceNameMissingIsNoOp(t *testing.T) {
	l := list(tok(Name, "x", 1, 0))
	ReplaceName("y", "z")(l, 0)
	assert.Equal(t, "x", l.Source())
}
