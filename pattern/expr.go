// SPDX-License-Identifier: MIT
// Package: syllabe/pattern
//
// expr.go - the expression tree: node kinds and combinators.
//
// Design contract (strict):
//   - Expressions are immutable values; every combinator returns a new Expr
//     and never mutates its receiver or arguments.
//   - The node set is closed: literal set, literal, sequence, alternation,
//     repeat (with greedy/lazy flag), named group, end anchor. Compilation
//     logic lives in compile.go.
//   - FromSequence orders alternatives by descending token length (codepoints,
//     then bytes, then lexicographic) — the same precedence the mirror scan
//     uses — so a multi-codepoint token is always tried before any token that
//     is a prefix of it.
//   - Determinism: the same tree always emits the same pattern source.

package pattern

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Expr is one node of a matching expression. The zero value is invalid and
// is rejected by every combinator and by Compile.
type Expr struct {
	n node
}

// node is the internal tree node. emit appends the node's pattern source;
// describe renders a human-readable form for Expr.String.
type node interface {
	emit(b *strings.Builder)
	describe() string
}

// valid reports whether the expression carries a node.
func (e Expr) valid() bool { return e.n != nil }

// String renders the expression for debugging and error messages. Labeled
// sub-expressions render as their label.
func (e Expr) String() string {
	if !e.valid() {
		return "<nil>"
	}
	return e.n.describe()
}

// -----------------------------------------------------------------------------
// Literal sets and literals
// -----------------------------------------------------------------------------

type literalSet struct {
	tokens []string // longest-first
	label  string
}

func (l *literalSet) emit(b *strings.Builder) {
	b.WriteString("(?:")
	for i, tok := range l.tokens {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(quoteToken(tok))
	}
	b.WriteByte(')')
}

func (l *literalSet) describe() string {
	if l.label != "" {
		return l.label
	}
	return "(" + strings.Join(l.tokens, "|") + ")"
}

// FromSequence builds an ordered alternation over tokens. Alternatives are
// sorted longest-first so no token shadows a longer token sharing its
// prefix; ties break by descending byte length, then lexicographically.
// The label names the set in String() renderings and error context.
// An empty token collection returns ErrEmptyTokenSet.
func FromSequence(tokens []string, label string) (Expr, error) {
	if len(tokens) == 0 {
		return Expr{}, fmt.Errorf("FromSequence(%s): %w", label, ErrEmptyTokenSet)
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sortLongestFirst(sorted)
	return Expr{n: &literalSet{tokens: sorted, label: label}}, nil
}

type literal struct {
	s string
}

func (l *literal) emit(b *strings.Builder) {
	b.WriteString("(?:")
	b.WriteString(quoteToken(l.s))
	b.WriteByte(')')
}

func (l *literal) describe() string { return l.s }

// Literal builds an expression matching exactly s, treated as one atomic
// token regardless of its content.
func Literal(s string) Expr { return Expr{n: &literal{s: s}} }

// -----------------------------------------------------------------------------
// Sequence and alternation
// -----------------------------------------------------------------------------

type sequence struct {
	parts []node
}

func (s *sequence) emit(b *strings.Builder) {
	for _, p := range s.parts {
		p.emit(b)
	}
}

func (s *sequence) describe() string {
	parts := make([]string, len(s.parts))
	for i, p := range s.parts {
		parts[i] = p.describe()
	}
	return strings.Join(parts, "+")
}

// Seq concatenates expressions; the result matches iff every part matches
// contiguously in order. Any invalid part poisons the result (caught at
// Compile via ErrNilExpr).
func Seq(exprs ...Expr) Expr {
	parts := make([]node, 0, len(exprs))
	for _, e := range exprs {
		if !e.valid() {
			return Expr{}
		}
		parts = append(parts, e.n)
	}
	return Expr{n: &sequence{parts: parts}}
}

// Then concatenates the receiver with more expressions; see Seq.
func (e Expr) Then(exprs ...Expr) Expr {
	return Seq(append([]Expr{e}, exprs...)...)
}

type alternation struct {
	parts []node
}

func (a *alternation) emit(b *strings.Builder) {
	b.WriteString("(?:")
	for i, p := range a.parts {
		if i > 0 {
			b.WriteByte('|')
		}
		p.emit(b)
	}
	b.WriteByte(')')
}

func (a *alternation) describe() string {
	parts := make([]string, len(a.parts))
	for i, p := range a.parts {
		parts[i] = p.describe()
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// Alt builds an ordered choice: alternatives are tried left to right and
// the first success wins (leftmost-first, no reordering).
func Alt(exprs ...Expr) Expr {
	parts := make([]node, 0, len(exprs))
	for _, e := range exprs {
		if !e.valid() {
			return Expr{}
		}
		parts = append(parts, e.n)
	}
	return Expr{n: &alternation{parts: parts}}
}

// Or is the method form of Alt, with the receiver as the first alternative.
func (e Expr) Or(exprs ...Expr) Expr {
	return Alt(append([]Expr{e}, exprs...)...)
}

// -----------------------------------------------------------------------------
// Repetition
// -----------------------------------------------------------------------------

type repeat struct {
	child node
	many  bool // false: {0,1}; true: {0,∞}
	lazy  bool
}

func (r *repeat) emit(b *strings.Builder) {
	b.WriteString("(?:")
	r.child.emit(b)
	b.WriteByte(')')
	if r.many {
		b.WriteByte('*')
	} else {
		b.WriteByte('?')
	}
	if r.lazy {
		b.WriteByte('?')
	}
}

func (r *repeat) describe() string {
	suffix := "?"
	if r.many {
		suffix = "*"
	}
	if r.lazy {
		suffix += "?"
	}
	return r.child.describe() + suffix
}

func (e Expr) wrapRepeat(many, lazy bool) Expr {
	if !e.valid() {
		return Expr{}
	}
	return Expr{n: &repeat{child: e.n, many: many, lazy: lazy}}
}

// Optional matches the receiver zero or one time, preferring one (greedy).
func (e Expr) Optional() Expr { return e.wrapRepeat(false, false) }

// OptionalLazy matches the receiver zero or one time, preferring zero: the
// minimal variant, used where an element must not be absorbed unless the
// rest of the pattern cannot match without it.
func (e Expr) OptionalLazy() Expr { return e.wrapRepeat(false, true) }

// Star matches the receiver zero or more times, as many as possible.
func (e Expr) Star() Expr { return e.wrapRepeat(true, false) }

// StarLazy matches the receiver zero or more times, as few as possible.
func (e Expr) StarLazy() Expr { return e.wrapRepeat(true, true) }

// -----------------------------------------------------------------------------
// Named groups, labels and the end anchor
// -----------------------------------------------------------------------------

type group struct {
	child node
	name  string
}

func (g *group) emit(b *strings.Builder) {
	b.WriteString("(?P<")
	b.WriteString(g.name)
	b.WriteByte('>')
	g.child.emit(b)
	b.WriteByte(')')
}

func (g *group) describe() string {
	return g.child.describe() + ".group(" + g.name + ")"
}

// Group wraps the receiver so its matched span is independently retrievable
// from a Match. Names must be non-empty and unique per compiled pattern;
// violations surface as ErrBadGroupName at Compile.
func (e Expr) Group(name string) Expr {
	if !e.valid() {
		return Expr{}
	}
	return Expr{n: &group{child: e.n, name: name}}
}

type labeled struct {
	child node
	label string
}

func (l *labeled) emit(b *strings.Builder) { l.child.emit(b) }

func (l *labeled) describe() string { return l.label }

// As attaches a debug label rendered by String(); matching is unaffected.
func (e Expr) As(label string) Expr {
	if !e.valid() {
		return Expr{}
	}
	return Expr{n: &labeled{child: e.n, label: label}}
}

type endAnchor struct{}

func (endAnchor) emit(b *strings.Builder) { b.WriteByte('$') }

func (endAnchor) describe() string { return "$" }

// End matches the empty string at the end of the input and nowhere else.
func End() Expr { return Expr{n: endAnchor{}} }

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// sortLongestFirst orders tokens by descending codepoint count, descending
// byte length, then ascending lexicographic order. Kept identical to the
// phoneme package's cluster precedence; the two orderings must agree so
// matching and mirroring resolve overlaps the same way.
func sortLongestFirst(tokens []string) {
	sort.SliceStable(tokens, func(i, j int) bool {
		ri, rj := utf8.RuneCountInString(tokens[i]), utf8.RuneCountInString(tokens[j])
		if ri != rj {
			return ri > rj
		}
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
}
