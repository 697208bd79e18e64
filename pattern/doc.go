// Package pattern is a small matching-expression builder for token streams
// whose tokens may span several codepoints.
//
// 🚀 What is pattern?
//
//	A composable algebra with a closed set of node kinds:
//		• FromSequence — ordered alternation over a token set, longest
//		  token first, so a cluster is never shadowed by its own prefix
//		• Literal      — one atomic literal token
//		• Seq / Then   — concatenation
//		• Or           — ordered choice, leftmost alternative wins
//		• Optional / Star and their Lazy variants — {0,1} and {0,∞}
//		  repetition, greedy by default, minimal on request
//		• Group        — named capture, retrievable after a match
//		• End          — matches only at end of input
//
// Expressions are pure values; building one never mutates another.
// Compile translates the finished tree into a *Pattern backed by the
// standard regexp engine (leftmost-first semantics), with every literal
// escaped so the engine can never reinterpret a token as syntax. The
// compiled Pattern is stateless and safe for concurrent use.
//
// ✨ Error policy (strict, as everywhere in syllabe):
//
//   - Construction and compilation surface ConfigurationError-class
//     sentinels (ErrEmptyTokenSet, ErrBadGroupName, ErrNilExpr,
//     ErrCompile); branch with errors.Is
//   - A compiled Pattern never errors per input: it matches or it doesn't
//   - MustCompile panics, and is meant for init-time fixed grammars only
//
// ⚙️ Usage:
//
//	vowel, _ := pattern.FromSequence([]string{"a", "ɑ̃"}, "V")
//	cons, _ := pattern.FromSequence([]string{"t", "tʃ"}, "C")
//	p := pattern.MustCompile(cons.Star().Group("coda").Then(vowel.Group("nucleus")))
//	for _, m := range p.FindAll("tʃa") {
//		fmt.Println(m.Group("coda"), m.Group("nucleus"))
//	}
package pattern
