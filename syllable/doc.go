// Package syllable decomposes French IPA words into onset/nucleus/coda
// syllables using a fixed phonotactic grammar.
//
// 🚀 How it works
//
//	Syllabification proceeds from the end of the word backward: a coda is
//	only non-empty when the following nucleus cannot claim those
//	consonants as its own onset ("maximal onset, minimal coda"). Instead
//	of lookahead, the driver mirrors the word — a cluster-safe reversal —
//	and matches a left-to-right grammar on the mirrored form, where each
//	syllable reads coda, nucleus, onset:
//
//		coda    := (Consonants ∪ Liquids ∪ Glides)*      greedy
//		nucleus := one Vowel (diphthongs included)
//		onset   := Glide?
//		           · ( "ng" | Liquid·LiquidFriendly
//		               | Consonant-class symbol )?
//		           · ( s? at end-of-word | s, minimal )
//
//	The extrasyllabic /s/ tail prefers absence: it only absorbs a sibilant
//	when the word would otherwise end (word-initial s in reading order,
//	as in "stʁiktəmɑ̃") — mid-word sibilants fall to the next syllable's
//	coda instead ("distʁibɥe" → dis.tʁi.bɥe).
//
// Matched spans are un-mirrored field by field and the collected sequence
// is reversed, yielding syllables in reading order. Concatenating them
// reproduces the input exactly for well-formed words.
//
// ✨ Guarantees:
//
//   - Deterministic – a pure function of the input
//   - Lossless – Syllabification.String() joins with "."; stripping the
//     dots restores the word
//   - Concurrency-safe – the grammar compiles once at init and is
//     read-only afterwards
//
// ⚙️ Input policy:
//
// The delimiters '/' and ' ' are opaque non-category symbols: they never
// join a syllable and simply vanish from the output. A span with no vowel
// (ill-formed input) contributes no syllable and no error — the historical
// behavior, preserved. Callers wanting rejection instead use
// SyllabifyStrict or Validate, which report ErrUnrecognizedSymbol for
// anything outside the inventory.
//
// Known limitation: word-initial /s/+stop onsets outside the
// liquid-friendly table (psy-, psaume-class words) are not modeled; such
// clusters split incorrectly. The rule is kept as-is deliberately.
package syllable
