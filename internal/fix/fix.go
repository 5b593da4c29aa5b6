package fix

import (
	"github.com/muneeb706/django-upgrade-agent/internal/parse"
	"github.com/muneeb706/django-upgrade-agent/internal/tokens"
)

// Source rewrites one file's text through the full pipeline: parse, walk,
// lex, apply, serialize. Source that fails to parse or lex is returned
// unchanged: the tool degrades to a no-op on files outside its grammar
// rather than producing a partial rewrite.
func Source(src string, reg *Registry, settings *Settings, filename string) string {
	bytes := []byte(src)

	tree, err := parse.Parse(bytes)
	if err != nil {
		return src
	}
	defer tree.Close()

	state := NewState(settings, filename, bytes)
	queued := Visit(tree, reg, state)
	if len(queued) == 0 {
		return src
	}

	ts, err := parse.Lex(bytes, tree)
	if err != nil {
		return src
	}

	list := tokens.NewList(ts)
	Apply(list, queued)
	return list.Source()
}
