package fix

import "github.com/muneeb706/django-upgrade-agent/internal/tokens"

// Apply runs the queued edits against the token list, walking it from the
// last token to the first. Reverse order is the correctness property that
// lets edits splice freely: by the time an edit runs, every token after its
// anchor is final, so insertions and deletions downstream can never shift
// the index of an edit still to come at a lower position.
func Apply(l *tokens.List, queued map[tokens.Offset][]tokens.EditFunc) {
	normalizeBlockMarkers(l)

	for i := l.Len() - 1; i >= 0; i-- {
		if i >= l.Len() {
			// A downstream edit shrank the list past this index.
			continue
		}
		t := l.At(i)
		if t.Src == "" {
			// Zero-width block markers are landmarks, never anchors.
			continue
		}
		for _, fn := range queued[t.Offset] {
			fn(l, i)
		}
		// Consume the entry: a deletion upstream of the anchor can slide an
		// already-visited token into the next index.
		delete(queued, t.Offset)
	}
}

// normalizeBlockMarkers swaps every (whitespace, dedent) pair into the
// (dedent, whitespace) order an editor expects. The lexer emits the marker
// after the dedented line's indentation; see internal/parse.
func normalizeBlockMarkers(l *tokens.List) {
	for i := 0; i+1 < l.Len(); i++ {
		if l.At(i).Kind == tokens.Whitespace && l.At(i+1).Kind == tokens.Dedent {
			l.Swap(i, i+1)
		}
	}
}
