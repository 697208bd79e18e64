package pattern_test

import (
	"testing"

	"github.com/katalvlaran/syllabe/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromSequence_Empty verifies the ConfigurationError contract: an
// alternation over no tokens must fail with ErrEmptyTokenSet.
func TestFromSequence_Empty(t *testing.T) {
	_, err := pattern.FromSequence(nil, "V")
	assert.ErrorIs(t, err, pattern.ErrEmptyTokenSet, "empty token set must error")

	_, err = pattern.FromSequence([]string{}, "V")
	assert.ErrorIs(t, err, pattern.ErrEmptyTokenSet, "zero-length token set must error")
}

// TestFromSequence_PrefixPrecedence asserts that a longer token is never
// tokenized as its own prefix: tʃ must win over t at the same position.
func TestFromSequence_PrefixPrecedence(t *testing.T) {
	set, err := pattern.FromSequence([]string{"t", "tʃ", "d", "dʒ"}, "C")
	require.NoError(t, err)

	p, err := pattern.Compile(set.Group("hit"))
	require.NoError(t, err)

	ms := p.FindAll("tʃ")
	require.Len(t, ms, 1, "tʃ is one token, not t followed by a stray ʃ")
	assert.Equal(t, "tʃ", ms[0].Group("hit"))

	ms = p.FindAll("t")
	require.Len(t, ms, 1)
	assert.Equal(t, "t", ms[0].Group("hit"))
}

// TestAlt_LeftmostFirst checks ordered choice: the first matching
// alternative wins even when a later one would also match.
func TestAlt_LeftmostFirst(t *testing.T) {
	ab := pattern.Literal("ab")
	a := pattern.Literal("a")

	p := pattern.MustCompile(ab.Or(a).Group("hit"))
	ms := p.FindAll("ab")
	require.Len(t, ms, 1)
	assert.Equal(t, "ab", ms[0].Group("hit"), "first alternative must win")

	p = pattern.MustCompile(a.Or(ab).Group("hit"))
	ms = p.FindAll("ab")
	require.Len(t, ms, 1)
	assert.Equal(t, "a", ms[0].Group("hit"), "declaration order is the precedence")
}

// TestRepeat_GreedyVsLazy contrasts Star and StarLazy inside the same
// surrounding pattern.
func TestRepeat_GreedyVsLazy(t *testing.T) {
	a := pattern.Literal("a")

	greedy := pattern.MustCompile(a.Star().Group("run").Then(a))
	ms := greedy.FindAll("aaaa")
	require.Len(t, ms, 1)
	assert.Equal(t, "aaa", ms[0].Group("run"), "greedy star takes all but the mandatory tail")

	lazy := pattern.MustCompile(a.StarLazy().Group("run").Then(a))
	ms = lazy.FindAll("aaaa")
	require.Len(t, ms, 4)
	assert.Equal(t, "", ms[0].Group("run"), "lazy star prefers the empty run")
}

// TestOptionalLazy_PrefersAbsent ensures the minimal optional only
// participates when the remainder cannot match without it.
func TestOptionalLazy_PrefersAbsent(t *testing.T) {
	s := pattern.Literal("s")
	b := pattern.Literal("b")

	p := pattern.MustCompile(s.OptionalLazy().Group("extra").Then(b))
	ms := p.FindAll("sb")
	require.Len(t, ms, 1)
	assert.Equal(t, "sb", ms[0].Text(), "the s is required here, so it is absorbed")
	assert.Equal(t, "s", ms[0].Group("extra"))

	// When b alone satisfies the pattern, a lazy optional stays empty and a
	// leading s is simply not part of the match.
	p = pattern.MustCompile(b.Then(s.OptionalLazy().Group("extra")))
	ms = p.FindAll("bs")
	require.Len(t, ms, 1)
	assert.Equal(t, "b", ms[0].Text())
	assert.Equal(t, "", ms[0].Group("extra"), "lazy optional must prefer absence")
}

// TestEnd_AnchorsMatch verifies End() only matches at end of input.
func TestEnd_AnchorsMatch(t *testing.T) {
	s := pattern.Literal("s")

	p := pattern.MustCompile(s.Then(pattern.End()))
	assert.Len(t, p.FindAll("as"), 1, "final s matches")
	assert.Nil(t, p.FindAll("sa"), "medial s must not match before End")
}

// TestGroup_Extraction covers multiple named groups and the empty-group
// convention.
func TestGroup_Extraction(t *testing.T) {
	v, err := pattern.FromSequence([]string{"a", "e"}, "V")
	require.NoError(t, err)
	c, err := pattern.FromSequence([]string{"k", "l"}, "C")
	require.NoError(t, err)

	p := pattern.MustCompile(c.Star().Group("coda").Then(v.Group("nucleus"), c.Optional().Group("onset")))
	assert.Equal(t, []string{"coda", "nucleus", "onset"}, p.GroupNames())

	ms := p.FindAll("kal")
	require.Len(t, ms, 1)
	assert.Equal(t, "k", ms[0].Group("coda"))
	assert.Equal(t, "a", ms[0].Group("nucleus"))
	assert.Equal(t, "l", ms[0].Group("onset"))
	assert.Equal(t, "", ms[0].Group("unknown"), "unknown group names read as empty")
}

// TestCompile_ConfigurationErrors exercises the build-time failure surface:
// nil expressions and ill-formed or duplicate group names.
func TestCompile_ConfigurationErrors(t *testing.T) {
	_, err := pattern.Compile(pattern.Expr{})
	assert.ErrorIs(t, err, pattern.ErrNilExpr, "zero-value expression must be rejected")

	a := pattern.Literal("a")

	_, err = pattern.Compile(a.Group(""))
	assert.ErrorIs(t, err, pattern.ErrBadGroupName, "empty group name must be rejected")

	_, err = pattern.Compile(a.Group("x").Then(a.Group("x")))
	assert.ErrorIs(t, err, pattern.ErrBadGroupName, "duplicate group name must be rejected")

	_, err = pattern.Compile(a.Group("1bad"))
	assert.ErrorIs(t, err, pattern.ErrBadGroupName, "engine-hostile group name must be rejected")
}

// TestCompile_PoisonedTree ensures invalid sub-expressions propagate: a
// combinator over a zero-value Expr yields ErrNilExpr at Compile.
func TestCompile_PoisonedTree(t *testing.T) {
	bad, _ := pattern.FromSequence(nil, "empty") // error deliberately ignored
	_, err := pattern.Compile(pattern.Literal("a").Then(bad))
	assert.ErrorIs(t, err, pattern.ErrNilExpr, "poisoned subtree must surface at Compile")
}

// TestLiteral_Atomicity feeds regex metacharacters as literal tokens: the
// engine must never reinterpret them as syntax.
func TestLiteral_Atomicity(t *testing.T) {
	p := pattern.MustCompile(pattern.Literal("a|b").Group("hit"))
	assert.Nil(t, p.FindAll("a"), "a|b is one token, not an alternation")
	assert.Nil(t, p.FindAll("b"))

	ms := p.FindAll("a|b")
	require.Len(t, ms, 1)
	assert.Equal(t, "a|b", ms[0].Group("hit"))

	set, err := pattern.FromSequence([]string{"[x]", "."}, "weird")
	require.NoError(t, err)
	p = pattern.MustCompile(set.Group("hit"))
	assert.Nil(t, p.FindAll("x"), "[x] must not become a character class")
	require.Len(t, p.FindAll("."), 1, ". must only match itself")
}

// TestFindAll_NonOverlapping verifies global scan semantics: leftmost
// matches, resuming past each consumed span.
func TestFindAll_NonOverlapping(t *testing.T) {
	v, err := pattern.FromSequence([]string{"a"}, "V")
	require.NoError(t, err)
	c, err := pattern.FromSequence([]string{"b", "k"}, "C")
	require.NoError(t, err)

	p := pattern.MustCompile(c.Then(v))
	ms := p.FindAll("bakabba")
	require.Len(t, ms, 3)
	assert.Equal(t, "ba", ms[0].Text())
	assert.Equal(t, "ka", ms[1].Text())
	assert.Equal(t, "ba", ms[2].Text(), "scan resumes past the unmatched b")

	start, end := ms[1].Span()
	assert.Equal(t, "ka", "bakabba"[start:end], "spans index the original input")
}

// TestExpr_String covers the debug rendering, labels included.
func TestExpr_String(t *testing.T) {
	v, err := pattern.FromSequence([]string{"a", "e"}, "V")
	require.NoError(t, err)

	assert.Equal(t, "V", v.String())
	assert.Equal(t, "V*", v.Star().String())
	assert.Equal(t, "N", v.Star().As("N").String())
	assert.Equal(t, "V+$", v.Then(pattern.End()).String())
	assert.Equal(t, "<nil>", pattern.Expr{}.String())
}

// TestCompile_Deterministic: identical trees emit identical sources.
func TestCompile_Deterministic(t *testing.T) {
	build := func() *pattern.Pattern {
		v, err := pattern.FromSequence([]string{"e", "a", "ɑ̃"}, "V")
		require.NoError(t, err)
		return pattern.MustCompile(v.Star().Group("run"))
	}
	assert.Equal(t, build().Source(), build().Source())
}
