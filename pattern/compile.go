// SPDX-License-Identifier: MIT
// Package: syllabe/pattern
//
// compile.go - translation of an expression tree into an executable matcher.
//
// Design contract (strict):
//   - Compile validates the tree first (nil nodes, group naming), then emits
//     pattern source and hands it to the standard regexp engine. regexp.Compile
//     gives leftmost-first alternation and honors greedy/lazy repetition,
//     exactly the policy the algebra promises.
//   - Every literal token passes through regexp.QuoteMeta, so the engine can
//     never reinterpret a token as a character class or operator.
//   - A *Pattern is immutable after Compile and safe for unsynchronized
//     concurrent use.

package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// groupNameRe constrains group names to what the engine accepts.
var groupNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Pattern is a compiled, reusable matcher produced from an Expr tree.
type Pattern struct {
	re     *regexp.Regexp
	groups []string // declared group names, declaration order
}

// Compile validates and translates the expression tree. All failures are
// configuration errors (ErrNilExpr, ErrBadGroupName, ErrCompile); a
// successfully compiled Pattern never errors on any input.
func Compile(e Expr) (*Pattern, error) {
	if !e.valid() {
		return nil, fmt.Errorf("Compile: %w", ErrNilExpr)
	}

	groups, err := collectGroups(e.n)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	var b strings.Builder
	e.n.emit(&b)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("Compile: %v: %w", err, ErrCompile)
	}
	return &Pattern{re: re, groups: groups}, nil
}

// MustCompile is Compile for init-time fixed grammars: it panics on any
// configuration error instead of returning it.
func MustCompile(e Expr) *Pattern {
	p, err := Compile(e)
	if err != nil {
		panic(err)
	}
	return p
}

// collectGroups walks the tree in emission order, validating that every
// group name is well-formed and unique.
func collectGroups(n node) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})

	var walk func(node) error
	walk = func(n node) error {
		switch t := n.(type) {
		case *group:
			if !groupNameRe.MatchString(t.name) {
				return fmt.Errorf("group %q: %w", t.name, ErrBadGroupName)
			}
			if _, dup := seen[t.name]; dup {
				return fmt.Errorf("group %q: %w", t.name, ErrBadGroupName)
			}
			seen[t.name] = struct{}{}
			names = append(names, t.name)
			return walk(t.child)
		case *sequence:
			for _, p := range t.parts {
				if err := walk(p); err != nil {
					return err
				}
			}
		case *alternation:
			for _, p := range t.parts {
				if err := walk(p); err != nil {
					return err
				}
			}
		case *repeat:
			return walk(t.child)
		case *labeled:
			return walk(t.child)
		}
		return nil
	}
	if err := walk(n); err != nil {
		return nil, err
	}
	return names, nil
}

// Source returns the pattern source handed to the engine. Useful in tests
// and when debugging a grammar.
func (p *Pattern) Source() string { return p.re.String() }

// GroupNames returns the declared group names in declaration order.
func (p *Pattern) GroupNames() []string {
	out := make([]string, len(p.groups))
	copy(out, p.groups)
	return out
}

// Match is one successful, non-overlapping match of a Pattern.
type Match struct {
	input      string
	start, end int
	spans      map[string][2]int
}

// Span returns the byte offsets [start, end) of the whole match.
func (m Match) Span() (start, end int) { return m.start, m.end }

// Text returns the full matched substring.
func (m Match) Text() string { return m.input[m.start:m.end] }

// Group returns the substring captured by the named group, or "" when the
// group did not participate in the match or the name is unknown.
func (m Match) Group(name string) string {
	span, ok := m.spans[name]
	if !ok || span[0] < 0 {
		return ""
	}
	return m.input[span[0]:span[1]]
}

// FindAll scans s left to right and returns every non-overlapping match in
// order, resuming immediately past each consumed span. Returns nil when
// nothing matches.
func (p *Pattern) FindAll(s string) []Match {
	idx := p.re.FindAllStringSubmatchIndex(s, -1)
	if idx == nil {
		return nil
	}

	names := p.re.SubexpNames()
	matches := make([]Match, 0, len(idx))
	for _, sub := range idx {
		m := Match{
			input: s,
			start: sub[0],
			end:   sub[1],
			spans: make(map[string][2]int, len(p.groups)),
		}
		for i, name := range names {
			if name == "" {
				continue
			}
			m.spans[name] = [2]int{sub[2*i], sub[2*i+1]}
		}
		matches = append(matches, m)
	}
	return matches
}

// quoteToken escapes one literal token so the engine treats it atomically.
func quoteToken(tok string) string { return regexp.QuoteMeta(tok) }
