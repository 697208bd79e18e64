package syllable

import "strings"

// Syllable is one onset/nucleus/coda triple. Onset and Coda may be empty;
// Nucleus is always exactly one Vowel-category symbol. Syllables are value
// objects with no further lifecycle.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
}

// String concatenates onset, nucleus and coda with no separator.
func (s Syllable) String() string {
	return s.Onset + s.Nucleus + s.Coda
}

// Syllabification is an ordered sequence of syllables in the source word's
// left-to-right reading order. Each call to Syllabify returns a fresh
// slice; treat it as immutable.
type Syllabification []Syllable

// String joins the syllables with "." — the line-oriented wire format.
func (sf Syllabification) String() string {
	parts := make([]string, len(sf))
	for i, s := range sf {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Word concatenates every syllable with nothing interposed. For well-formed
// input this reproduces the original phoneme string exactly.
func (sf Syllabification) Word() string {
	var b strings.Builder
	for _, s := range sf {
		b.WriteString(s.Onset)
		b.WriteString(s.Nucleus)
		b.WriteString(s.Coda)
	}
	return b.String()
}
