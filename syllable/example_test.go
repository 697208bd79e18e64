package syllable_test

import (
	"fmt"

	"github.com/katalvlaran/syllabe/syllable"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSyllabify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	"kalkyləʁjɔ̃" (calculerions) — four syllables, one closed by a liquid
//	coda and one opened by a consonant+glide onset.
//
// Use case:
//
//	Feeding a pronunciation dictionary line by line and storing the
//	syllable boundaries alongside each entry.
func ExampleSyllabify() {
	s := syllable.Syllabify("kalkyləʁjɔ̃")
	fmt.Println(s)
	fmt.Println(len(s))
	// Output:
	// kal.ky.lə.ʁjɔ̃
	// 4
}

// ExampleSyllabify_triples shows the per-syllable onset/nucleus/coda
// decomposition, including an extrasyllabic sibilant landing in a coda.
func ExampleSyllabify_triples() {
	for _, s := range syllable.Syllabify("distʁibɥe") {
		fmt.Printf("(%q, %q, %q)\n", s.Onset, s.Nucleus, s.Coda)
	}
	// Output:
	// ("d", "i", "s")
	// ("tʁ", "i", "")
	// ("bɥ", "e", "")
}

// ExampleSyllabifyStrict demonstrates the validating mode rejecting a
// symbol outside the inventory.
func ExampleSyllabifyStrict() {
	if _, err := syllable.SyllabifyStrict("kax"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Validate: "x" at codepoint 2: syllable: symbol outside inventory
}
