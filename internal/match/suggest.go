package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the lowest normalized similarity Suggest accepts.
const MinSimilarity = 0.5

// Suggestion is a candidate ranked against a name.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name after normalization and returns
// those at or above MinSimilarity, best first. Ties keep alphabetical order.
func Rank(name string, candidates []string) []Suggestion {
	norm := NormalizeIdent(name)

	var out []Suggestion
	for _, c := range candidates {
		if score := Similarity(norm, NormalizeIdent(c)); score >= MinSimilarity {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns up to limit candidate names closest to name.
// A non-positive limit returns every accepted candidate.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.Name)
	}

	return out
}
