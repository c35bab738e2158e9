// Package names provides fuzzy matching over fixed name corpora, used to
// attach "did you mean" suggestions to errors for misspelled item names and
// option values.
package names

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Matcher suggests close matches from a fixed corpus of known names.
type Matcher struct {
	names  []string
	folded []string
	caser  cases.Caser
}

// NewMatcher builds a matcher over corpus. The corpus order is preserved
// for tie-breaking, so pass names in their canonical catalog order.
func NewMatcher(corpus []string) *Matcher {
	m := &Matcher{
		names:  make([]string, len(corpus)),
		folded: make([]string, len(corpus)),
		caser:  cases.Fold(),
	}
	copy(m.names, corpus)
	for i, name := range corpus {
		m.folded[i] = m.caser.String(name)
	}
	return m
}

// editLimit scales the accepted edit distance with the candidate length so
// short names don't match everything.
func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

type scored struct {
	name string
	dist int
	pos  int
}

// Suggest returns up to max corpus names within edit-distance range of
// input, nearest first. Ties keep corpus order. An exact (case-folded)
// match returns just that name.
func (m *Matcher) Suggest(input string, max int) []string {
	if max <= 0 {
		return nil
	}
	folded := m.caser.String(input)

	var candidates []scored
	for i, cand := range m.folded {
		if cand == folded {
			return []string{m.names[i]}
		}
		dist := levenshtein.ComputeDistance(folded, cand)
		if dist > editLimit(len(cand)) {
			continue
		}
		candidates = append(candidates, scored{name: m.names[i], dist: dist, pos: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].pos < candidates[j].pos
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// Best returns the single closest match, or "" when nothing is near.
func (m *Matcher) Best(input string) string {
	got := m.Suggest(input, 1)
	if len(got) == 0 {
		return ""
	}
	return got[0]
}
