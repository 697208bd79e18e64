// Package mirror reverses phoneme strings without ever splitting a
// multi-codepoint symbol.
//
// A plain codepoint reversal of "kalkyləʁjɔ̃" would detach the combining
// tilde from its vowel; Mirror keeps every known cluster (affricates,
// nasalized vowels, diphthongs) internally intact while reversing its
// position along with everything else:
//
//	mirror.Mirror("kalkyləʁjɔ̃") // "ɔ̃jʁəlyklak"
//
// The transform is an involution — Mirror(Mirror(s)) == s for any string
// made of inventory symbols — and a pure function, memoized in an
// unbounded insert-only cache. The syllabification driver mirrors each
// word once and each extracted field once more, so repeated substrings
// across a batch are computed a single time.
//
// Overlapping cluster candidates are resolved leftmost-longest, the same
// precedence the pattern package applies to alternatives; the two may
// never disagree on a boundary.
//
// Concurrency: the package-level Mirror and any shared *Transform are safe
// for concurrent use; the cache is guarded by a sync.RWMutex and entries
// are never invalidated. Callers who need bounded memory can own a
// NewTransform instance per batch and drop it afterwards.
package mirror
