package match

import (
	"sort"
)

// DefaultSuggestionThreshold is the minimum similarity for a suggestion.
const DefaultSuggestionThreshold = 0.6

// Suggestion is a current label similar to a removed one.
type Suggestion struct {
	Label string
	Score float64
}

// SuggestLabels ranks candidates by similarity to label and returns at most
// limit entries scoring at least threshold. Equal scores prefer the
// candidate sharing more words with label, then candidate order.
func SuggestLabels(label string, candidates []string, threshold float64, limit int) []Suggestion {
	var out []Suggestion

	seen := map[string]bool{}
	shared := map[string]int{}
	words := TokenizeLabel(label)

	for _, c := range candidates {
		if seen[c] {
			continue
		}

		seen[c] = true

		score := LabelSimilarity(label, c)
		if score >= threshold {
			out = append(out, Suggestion{Label: c, Score: score})
			shared[c] = sharedWords(words, TokenizeLabel(c))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return shared[out[i].Label] > shared[out[j].Label]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// SuggestionLabels returns just the labels.
func SuggestionLabels(s []Suggestion) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].Label
	}

	return out
}

func sharedWords(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}

	n := 0

	for _, w := range b {
		if set[w] {
			n++
			delete(set, w)
		}
	}

	return n
}
