// Package phoneme is the static symbol inventory for French syllabification.
//
// It classifies IPA symbols into five frozen categories:
//
//   - Vowels          — monophthongs, nasalized vowels and non-syllabic
//     diphthongs; the only legal syllable nuclei
//   - Liquids         — ʁ, l
//   - Glides          — j, w, ɥ (semivowels)
//   - Consonants      — the plain consonant set; liquids and glides also
//     act as consonant-class members, but that union is composed by the
//     grammar, not duplicated here
//   - LiquidFriendly  — obstruents that may precede a liquid in an onset
//     cluster (p, b, f, v, t, d, k, g)
//
// A symbol is one phonetic unit and may span several codepoints: affricates
// (tʃ, dʒ), nasalized vowels (vowel + U+0303) and non-syllabic diphthongs
// (U+032F between the two vowel letters). Clusters() enumerates every
// multi-codepoint symbol, longest first; that ordering is the precedence
// contract shared with the mirror and pattern packages, so a cluster is
// never torn apart by reversal or shadowed by its own first codepoint
// during matching.
//
// All categories are built once at package initialization and never
// mutated; membership checks are O(1) and safe for unsynchronized
// concurrent use.
package phoneme
