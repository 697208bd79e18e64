package syllable

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/syllabe/mirror"
	"github.com/katalvlaran/syllabe/phoneme"
)

// Syllabify breaks a word pronunciation written in IPA into syllables.
//
// The word is mirrored, scanned left to right with the compiled grammar
// (leftmost, non-overlapping matches), each match's fields are un-mirrored,
// and the collected sequence is reversed back into reading order.
//
// Pure and deterministic. Ill-formed spans (no vowel, or symbols outside
// the inventory) contribute no syllable and raise no error; see
// SyllabifyStrict for the validating variant.
func Syllabify(word string) Syllabification {
	matches := grammar.FindAll(mirror.Mirror(word))
	if matches == nil {
		return nil
	}

	out := make(Syllabification, len(matches))
	last := len(matches) - 1
	for i, m := range matches {
		// Encounter order over the mirrored word is reverse reading order.
		out[last-i] = Syllable{
			Onset:   mirror.Mirror(m.Group(groupOnset)),
			Nucleus: mirror.Mirror(m.Group(groupNucleus)),
			Coda:    mirror.Mirror(m.Group(groupCoda)),
		}
	}
	return out
}

// SyllabifyStrict is the documented stricter mode: it first validates that
// the word consists solely of inventory symbols and delimiters, then
// syllabifies. The returned error wraps ErrUnrecognizedSymbol with the
// offending symbol and its codepoint offset.
func SyllabifyStrict(word string) (Syllabification, error) {
	if err := Validate(word); err != nil {
		return nil, err
	}
	return Syllabify(word), nil
}

// delimiters are opaque non-category symbols tolerated by Validate: the
// phonemic-notation slashes and the word separator.
const delimiters = "/ "

// Validate checks that word tokenizes entirely into inventory symbols and
// delimiters, using the same leftmost-longest precedence as the matcher
// and the mirror. Returns nil for the empty string.
func Validate(word string) error {
	runes := []rune(word)
	for i := 0; i < len(runes); {
		w := symbolAt(runes, i)
		if w == 0 {
			return fmt.Errorf("Validate: %q at codepoint %d: %w", string(runes[i]), i, ErrUnrecognizedSymbol)
		}
		i += w
	}
	return nil
}

// inventory holds every known symbol, longest first, for the Validate scan.
var inventory = func() [][]rune {
	seen := make(map[string]struct{})
	var symbols []string
	for _, c := range []phoneme.Category{
		phoneme.Vowels, phoneme.Liquids, phoneme.Glides,
		phoneme.LiquidFriendly, phoneme.Consonants,
	} {
		for _, s := range c.Symbols() {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			symbols = append(symbols, s)
		}
	}
	phoneme.SortLongestFirst(symbols)

	decoded := make([][]rune, len(symbols))
	for i, s := range symbols {
		decoded[i] = []rune(s)
	}
	return decoded
}()

// symbolAt returns the rune width of the longest inventory symbol or
// delimiter starting at position i, or 0 when nothing matches.
func symbolAt(runes []rune, i int) int {
	for _, sym := range inventory {
		if i+len(sym) > len(runes) {
			continue
		}
		match := true
		for k, r := range sym {
			if runes[i+k] != r {
				match = false
				break
			}
		}
		if match {
			return len(sym)
		}
	}
	if strings.ContainsRune(delimiters, runes[i]) {
		return 1
	}
	return 0
}
