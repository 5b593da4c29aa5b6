package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tree, err := Parse([]byte("x = 1\n"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "module", root.Type())
	assert.EqualValues(t, 1, root.NamedChildCount())
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed paren", "f(\n"},
		{"bad def", "def f(:\n    pass\n"},
		{"stray indent keyword", "class :\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Nil(t, tree)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Greater(t, perr.Offset.Line, 0)
		})
	}
}

func TestNodeOffsets(t *testing.T) {
	src := []byte("x = 1\ny = 2\n")
	tree, err := Parse(src)
	require.NoError(t, err)
	defer tree.Close()

	second := tree.RootNode().NamedChild(1)
	require.NotNil(t, second)
	assert.Equal(t, "y = 2", Text(second, src))

	start := StartOffset(second)
	assert.Equal(t, 2, start.Line)
	assert.Equal(t, 0, start.Col)

	end := EndOffset(second)
	assert.Equal(t, 2, end.Line)
	assert.Equal(t, 5, end.Col)
}
