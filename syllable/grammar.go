// SPDX-License-Identifier: MIT
// Package: syllabe/syllable
//
// grammar.go - the fixed one-syllable grammar, assembled once at init.
//
// Design contract (strict):
//   - The grammar is matched against the MIRRORED word, so group order is
//     coda, nucleus, onset and the onset's internal order is reversed too:
//     the glide slot comes first, the liquid precedes its obstruent ("tʁ"
//     reads "ʁt"), and "gn" reads "ng".
//   - Categories compose through the pattern algebra; no individual symbol
//     is referenced here except the extrasyllabic sibilant and the "ng"
//     onset literal.
//   - Construction failures are programming errors in the tables and panic
//     at package load (MustCompile); nothing here can fail per word.

package syllable

import (
	"fmt"

	"github.com/katalvlaran/syllabe/pattern"
	"github.com/katalvlaran/syllabe/phoneme"
)

// Group names used for extraction, in mirrored match order.
const (
	groupCoda    = "coda"
	groupNucleus = "nucleus"
	groupOnset   = "onset"
)

// grammar is the compiled syllable pattern, shared and read-only.
var grammar = pattern.MustCompile(structure())

// structure builds the expression tree for one mirrored syllable.
func structure() pattern.Expr {
	v := mustSet(phoneme.Vowels.Symbols(), "V")
	s := mustSet([]string{"s"}, "S")
	l := mustSet(phoneme.Liquids.Symbols(), "L")
	y := mustSet(phoneme.Glides.Symbols(), "Y")

	// Consonant-class: liquids and glides double as plain coda/onset members.
	c := l.Or(y, mustSet(phoneme.Consonants.Symbols(), "")).As("C")

	// Liquid cluster, mirrored: liquid first, then its friendly obstruent.
	lc := l.Then(mustSet(phoneme.LiquidFriendly.Symbols(), "")).As("LC")

	onset := pattern.Seq(
		// semivowel:
		y.Optional(),
		// onset consonant slot:
		pattern.Literal("ng").Or(lc, c).Optional(),
		// extrasyllabic sibilant: absorbed greedily only at end of the
		// mirrored word (a word-initial s in reading order); elsewhere the
		// minimal variant leaves it for the next syllable's coda.
		s.Optional().Then(pattern.End()).Or(s.OptionalLazy()),
	)

	return pattern.Seq(
		c.Star().Group(groupCoda),
		v.Group(groupNucleus),
		onset.Group(groupOnset),
	)
}

// mustSet wraps pattern.FromSequence for the init-time tables.
func mustSet(tokens []string, label string) pattern.Expr {
	e, err := pattern.FromSequence(tokens, label)
	if err != nil {
		panic(fmt.Errorf("syllable: grammar construction: %w", err))
	}
	return e
}

// Grammar exposes the compiled syllable pattern. It is stateless and safe
// for concurrent use; callers must not rely on the exact Source() text,
// which follows the inventory tables.
func Grammar() *pattern.Pattern { return grammar }
