package tokens

// Scanning helpers and edit builders shared by fixers. The scanners walk
// forward from an anchor index only; edits never derive indices upstream of
// their anchor.

// Find returns the index of the first token at or after i with the given
// kind and source text. It panics (index out of range) when no such token
// exists; fixers only call it for tokens the matched node guarantees.
func Find(l *List, i int, kind Kind, src string) int {
	for {
		if t := l.At(i); t.Kind == kind && t.Src == src {
			return i
		}
		i++
	}
}

// FindLastBefore returns the index of the last text-bearing token at or
// after i that starts before end, i.e. the final token covered by a node
// ending at end.
func FindLastBefore(l *List, i int, end Offset) int {
	last := i
	for j := i; j < l.Len(); j++ {
		t := l.At(j)
		if !t.Offset.Before(end) {
			break
		}
		if t.Src != "" {
			last = j
		}
	}
	return last
}

// AloneOnLine reports whether the tokens in [start, end] are the only
// text on their line: preceded by a newline plus indentation and followed
// by a newline.
func AloneOnLine(l *List, start, end int) bool {
	return start >= 2 &&
		l.At(start-2).Kind == Newline &&
		l.At(start-1).Kind == Whitespace &&
		end+1 < l.Len() &&
		l.At(end+1).Kind == Newline
}

// Insert places synthesized source text before index i.
func Insert(l *List, i int, src string) {
	l.Insert(i, Token{Kind: Code, Src: src})
}

// Erase builds an edit that removes the statement anchored at i and ending
// at end, swallowing a trailing comma, trailing whitespace and comment, the
// line terminator, and the line's leading indentation.
func Erase(end Offset) EditFunc {
	return func(l *List, i int) {
		j := FindLastBefore(l, i, end)
		if j+1 < l.Len() && l.At(j+1).Kind == Op && l.At(j+1).Src == "," {
			j++
		}
		for j+1 < l.Len() && (l.At(j+1).Kind == Whitespace || l.At(j+1).Kind == Comment) {
			j++
		}
		if j+1 < l.Len() && l.At(j+1).Kind == Newline {
			j++
		}
		if i > 0 && l.At(i-1).Kind == Whitespace {
			i--
		}
		l.Delete(i, j+1)
	}
}

// ReplaceName builds an edit that rewrites the first token at or after the
// anchor whose text equals old.
func ReplaceName(old, repl string) EditFunc {
	return func(l *List, i int) {
		for ; i < l.Len(); i++ {
			if t := l.At(i); t.Src == old {
				t.Src = repl
				l.Set(i, t)
				return
			}
		}
	}
}
