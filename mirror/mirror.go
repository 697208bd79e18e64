package mirror

import (
	"sync"

	"github.com/katalvlaran/syllabe/phoneme"
)

// Transform is a cluster-safe reversal with its own memo cache.
//
// The zero value is not usable; construct with NewTransform. A single
// Transform may be shared across goroutines.
type Transform struct {
	clusters [][]rune // longest-first, rune-decoded once

	mu    sync.RWMutex
	cache map[string]string
}

// std backs the package-level Mirror, configured with the full phoneme
// inventory. Built once; its cache grows monotonically (bounded by the
// caller's vocabulary, per the package contract).
var std = NewTransform(phoneme.Clusters())

// NewTransform builds a Transform recognizing the given multi-codepoint
// symbols. The slice is copied and re-sorted longest-first, so callers
// cannot perturb precedence after construction.
func NewTransform(clusters []string) *Transform {
	sorted := make([]string, len(clusters))
	copy(sorted, clusters)
	phoneme.SortLongestFirst(sorted)

	decoded := make([][]rune, len(sorted))
	for i, c := range sorted {
		decoded[i] = []rune(c)
	}
	return &Transform{clusters: decoded, cache: make(map[string]string)}
}

// Mirror returns s reversed codepoint-by-codepoint with every known
// cluster kept internally intact. Involution: Mirror(Mirror(s)) == s for
// inventory strings. Results are memoized.
func (t *Transform) Mirror(s string) string {
	t.mu.RLock()
	v, ok := t.cache[s]
	t.mu.RUnlock()
	if ok {
		return v
	}

	v = t.mirror(s)

	t.mu.Lock()
	t.cache[s] = v
	t.mu.Unlock()
	return v
}

// Len reports the number of memoized entries.
func (t *Transform) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cache)
}

// mirror is the uncached two-pass transform:
//  1. locate cluster occurrences, scanning left to right and taking the
//     longest candidate at each position (non-overlapping by construction);
//  2. reverse the whole rune slice;
//  3. re-reverse each located span in its mapped position, restoring the
//     cluster's internal codepoint order.
func (t *Transform) mirror(s string) string {
	runes := []rune(s)
	n := len(runes)
	if n < 2 {
		return s
	}

	var spans [][2]int
	for i := 0; i < n; {
		width := t.clusterAt(runes, i)
		if width == 0 {
			i++
			continue
		}
		spans = append(spans, [2]int{i, i + width})
		i += width
	}

	reverse(runes, 0, n)
	for _, sp := range spans {
		// Original span [a,b) lands at [n-b, n-a) after the full reversal.
		reverse(runes, n-sp[1], n-sp[0])
	}
	return string(runes)
}

// clusterAt returns the rune width of the longest cluster starting at
// position i, or 0 when none starts there.
func (t *Transform) clusterAt(runes []rune, i int) int {
	for _, c := range t.clusters {
		if i+len(c) > len(runes) {
			continue
		}
		match := true
		for k, r := range c {
			if runes[i+k] != r {
				match = false
				break
			}
		}
		if match {
			return len(c)
		}
	}
	return 0
}

// reverse flips runes[lo:hi] in place.
func reverse(runes []rune, lo, hi int) {
	for l, r := lo, hi-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}
}

// Mirror is the package-level transform over the full phoneme inventory.
func Mirror(s string) string { return std.Mirror(s) }
