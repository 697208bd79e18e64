// Package syllabe breaks French words, transcribed in IPA, into syllables —
// each an onset/nucleus/coda triple obeying French phonotactics.
//
// 🚀 What is syllabe?
//
//	A small, deterministic library that brings together:
//		• Phoneme inventory: vowels (with diphthongs), liquids, glides,
//		  consonants and the liquid-friendly set, as frozen categories
//		• Pattern algebra: composable matching expressions (alternation,
//		  repetition, named groups) compiled once into a reusable matcher
//		• Cluster-safe mirroring: string reversal that never splits an
//		  affricate or a nasalized vowel
//		• Syllable grammar: maximal onset / minimal coda, extrasyllabic /s/,
//		  liquid clusters — all matched on the mirrored word
//
// ✨ Why choose syllabe?
//
//   - Deterministic – same word in, same syllables out, every time
//   - Lossless – concatenating the syllables reproduces the input exactly
//   - Concurrency-safe – the grammar and inventory are immutable after init
//   - Pure Go – the matcher compiles to the standard regexp engine
//
// Everything is organized under four subpackages plus a batch CLI:
//
//	phoneme/  — symbol categories & multi-codepoint cluster table
//	pattern/  — expression builder + compiled matcher
//	mirror/   — cluster-safe reversal (memoized involution)
//	syllable/ — the grammar and the Syllabify driver
//	cmd/syllabe — line-oriented stdin→stdout batch filter
//
// Quick example:
//
//	s := syllable.Syllabify("kalkyləʁjɔ̃")
//	fmt.Println(s) // kal.ky.lə.ʁjɔ̃
//
// Dive into the per-package docs for the grammar, its known limitations
// (word-initial /s/+stop clusters), and the strict validating mode.
//
//	go get github.com/katalvlaran/syllabe
package syllabe
