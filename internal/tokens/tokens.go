// Package tokens defines the mutable lexical stream that fixers edit.
//
// The whole file is held as one ordered, index-addressable sequence of
// tokens; every source byte belongs to exactly one token, so joining the
// token texts reproduces the file. Edits splice tokens in place by index,
// never by rebuilding the syntax tree.
package tokens

import "strings"

// Offset is a position in the original source: Line is 1-based, Col is the
// 0-based byte offset from the start of the line. Offsets are the join key
// between syntax-tree nodes and tokens: a node's start offset names the one
// token any edit anchored to that node applies at.
type Offset struct {
	Line int
	Col  int
}

// Before reports whether o precedes p in source order.
func (o Offset) Before(p Offset) bool {
	return o.Line < p.Line || (o.Line == p.Line && o.Col < p.Col)
}

// Kind classifies a token.
type Kind int

const (
	// Name is an identifier or keyword.
	Name Kind = iota
	// Op is an operator or punctuation token.
	Op
	// String is a piece of a string literal (quote or content).
	String
	// Number is a numeric literal.
	Number
	// Comment is a # comment.
	Comment
	// Whitespace is insignificant spaces or tabs, including indentation.
	Whitespace
	// Newline is a line terminator ("\n" or "\r\n").
	Newline
	// Dedent is a zero-width end-of-block marker. It carries no text and
	// must never anchor an edit; it only serves as a positional landmark.
	Dedent
	// Code is synthesized source inserted by an edit function.
	Code
)

var kindNames = [...]string{
	Name: "Name", Op: "Op", String: "String", Number: "Number",
	Comment: "Comment", Whitespace: "Whitespace", Newline: "Newline",
	Dedent: "Dedent", Code: "Code",
}

func (k Kind) String() string { return kindNames[k] }

// Token is one element of the lexical stream.
type Token struct {
	Kind   Kind
	Src    string
	Offset Offset
}

// List is the mutable token sequence for one file.
type List struct {
	toks []Token
}

// NewList wraps toks in a List. The slice is owned by the List afterwards.
func NewList(toks []Token) *List {
	return &List{toks: toks}
}

// Len returns the current number of tokens.
func (l *List) Len() int { return len(l.toks) }

// At returns the token at index i.
func (l *List) At(i int) Token { return l.toks[i] }

// Set replaces the token at index i.
func (l *List) Set(i int, t Token) { l.toks[i] = t }

// Swap exchanges the tokens at i and j.
func (l *List) Swap(i, j int) {
	l.toks[i], l.toks[j] = l.toks[j], l.toks[i]
}

// Insert places t before index i.
func (l *List) Insert(i int, t Token) {
	l.toks = append(l.toks, Token{})
	copy(l.toks[i+1:], l.toks[i:])
	l.toks[i] = t
}

// Delete removes the half-open range [i, j).
func (l *List) Delete(i, j int) {
	l.toks = append(l.toks[:i], l.toks[j:]...)
}

// Source flattens the token sequence back into text. It is total: any
// sequence, mutated or not, serializes.
func (l *List) Source() string {
	var b strings.Builder
	for _, t := range l.toks {
		b.WriteString(t.Src)
	}
	return b.String()
}

// EditFunc mutates the list at or after the anchor index i, which is the
// token whose offset the edit was queued against. Everything after i has
// already been finalized by the time the edit runs, so arbitrary downstream
// splices are safe. Every index an edit touches must be derived from its
// own anchor; reaching upstream is limited to the line's leading
// indentation (see Erase).
type EditFunc func(l *List, i int)
