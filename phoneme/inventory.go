// SPDX-License-Identifier: MIT
// Package: syllabe/phoneme
//
// inventory.go - canonical symbol tables (data-only) and the Category type.
//
// Purpose:
//   - Single source of truth for the IPA symbol inventory. Category values
//     are frozen at init; every lookup is a map hit, O(1).
//   - Multi-codepoint symbols (affricates, nasalized vowels, diphthongs)
//     are derived from the same tables, so the cluster list can never drift
//     from the categories.
//
// Contract (for consumers such as mirror and syllable):
//   - Symbols() returns a fresh copy in declaration order; callers may not
//     observe or cause mutation of the inventory.
//   - Clusters() is sorted longest-first (codepoints desc, bytes desc,
//     lexicographic asc). Leftmost-longest scanning against this list is
//     the shared precedence rule for reversal and matching.
//   - Init verifies that every cluster belongs to a category; a violation
//     is a programming error and panics at package load, never at runtime.

package phoneme

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Category is an immutable named set of phonetic symbols.
type Category struct {
	name    string
	symbols []string
	index   map[string]struct{}
}

// newCategory freezes the given symbols under a name. Declaration order is
// preserved for Symbols(); duplicates are a table-authoring error.
func newCategory(name string, symbols ...string) Category {
	idx := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := idx[s]; dup {
			panic(fmt.Sprintf("phoneme: duplicate symbol %q in category %s", s, name))
		}
		idx[s] = struct{}{}
	}
	return Category{name: name, symbols: symbols, index: idx}
}

// Name returns the category's canonical name.
func (c Category) Name() string { return c.name }

// Len returns the number of symbols in the category.
func (c Category) Len() int { return len(c.symbols) }

// Contains reports whether sym is a member of the category. O(1).
func (c Category) Contains(sym string) bool {
	_, ok := c.index[sym]
	return ok
}

// Symbols returns the category's symbols in declaration order.
// The slice is a copy; mutating it does not affect the inventory.
func (c Category) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Nasalized vowels carry U+0303 (combining tilde); diphthongs carry U+032F
// (combining inverted breve below, the IPA non-syllabic diacritic). Both
// are two-or-three-codepoint symbols and must stay in the same tables as
// the plain vowels so Clusters() sees them.
var (
	// Vowels are the only legal syllable nuclei, diphthongs included.
	Vowels = newCategory("Vowels",
		"a", "ɛ", "e", "i",
		"ə", "œ", "ø", "y",
		"ɑ", "ɔ", "o", "u",
		"ɑ̃", "ɛ̃", "œ̃", "ɔ̃",
		// non-syllabic diphthongs:
		"u̯a", "y̯i", "i̯e", "i̯ɛ",
	)

	// Liquids may follow a liquid-friendly obstruent in an onset cluster.
	Liquids = newCategory("Liquids", "ʁ", "l")

	// Glides (semivowels) may open an onset before the consonant slot.
	Glides = newCategory("Glides", "j", "w", "ɥ")

	// LiquidFriendly obstruents are the legal first halves of
	// obstruent+liquid onsets (tʁ, bl, gʁ, ...).
	LiquidFriendly = newCategory("LiquidFriendly",
		"p", "b", "f", "v",
		"t", "d",
		"k", "g",
	)

	// Consonants is the plain consonant set. The grammar composes
	// Consonants ∪ Liquids ∪ Glides for coda and onset slots; the overlap
	// lives in the grammar, not in the tables.
	Consonants = newCategory("Consonants",
		"p", "b", "f", "v", "m",
		"t", "d", "s", "z", "n",
		"k", "g", "ʃ", "ʒ", "ɲ",
		// dataset specific:
		"ŋ", "ʼ", "tʃ", "dʒ",
	)
)

// categories lists every exported Category, used by Known and the cluster
// derivation. Order is irrelevant; membership is set-based.
var categories = []Category{Vowels, Liquids, Glides, LiquidFriendly, Consonants}

// clusters is the derived multi-codepoint symbol table, longest first.
var clusters []string

func init() {
	seen := make(map[string]struct{})
	for _, c := range categories {
		for _, s := range c.symbols {
			if utf8.RuneCountInString(s) < 2 {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			clusters = append(clusters, s)
		}
	}
	SortLongestFirst(clusters)

	// Every cluster must resolve to a category; anything else means the
	// tables above were edited inconsistently.
	for _, s := range clusters {
		if !Known(s) {
			panic(fmt.Sprintf("phoneme: cluster %q belongs to no category", s))
		}
	}
}

// Known reports whether sym belongs to at least one category.
func Known(sym string) bool {
	for _, c := range categories {
		if c.Contains(sym) {
			return true
		}
	}
	return false
}

// Clusters returns every multi-codepoint symbol of the inventory, sorted
// longest-first. The slice is a copy.
func Clusters() []string {
	out := make([]string, len(clusters))
	copy(out, clusters)
	return out
}

// SortLongestFirst orders symbols by descending codepoint count, then
// descending byte length, then ascending lexicographic order. This is the
// leftmost-longest precedence shared by the mirror scan and the pattern
// builder's alternative ordering; the two must never disagree on which of
// two overlapping candidates wins.
func SortLongestFirst(symbols []string) {
	sort.SliceStable(symbols, func(i, j int) bool {
		ri, rj := utf8.RuneCountInString(symbols[i]), utf8.RuneCountInString(symbols[j])
		if ri != rj {
			return ri > rj
		}
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})
}
