// SPDX-License-Identifier: MIT
// Package: syllabe/pattern
//
// errors.go — sentinel errors for the pattern package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`.
//   • All sentinels here are configuration errors: they can only occur while
//     building or compiling an expression, never while matching a word.

package pattern

import "errors"

// ErrEmptyTokenSet indicates FromSequence was given no tokens. An
// alternation over nothing can never match and always signals a broken
// grammar table.
// Usage: if errors.Is(err, ErrEmptyTokenSet) { /* fix the table */ }.
var ErrEmptyTokenSet = errors.New("pattern: empty token set")

// ErrBadGroupName indicates a named group with an empty name, a name the
// underlying engine cannot accept, or a name already used elsewhere in the
// same expression tree. Group names must be unique so extraction after a
// match is unambiguous.
var ErrBadGroupName = errors.New("pattern: missing or duplicate group name")

// ErrNilExpr indicates a zero-value Expr reached a combinator or Compile.
// Zero values arise from ignoring a FromSequence error; they are rejected
// eagerly rather than compiled into a silently-empty pattern.
var ErrNilExpr = errors.New("pattern: nil expression")

// ErrCompile indicates the generated pattern was rejected by the underlying
// engine. With validated group names and escaped literals this should be
// unreachable; it is kept as a sentinel so the failure stays diagnosable.
var ErrCompile = errors.New("pattern: expression does not compile")
