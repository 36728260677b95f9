package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestLabels(t *testing.T) {
	candidates := []string{"Email", "Email Address", "Phone", "Emails", "Ministry", "Email"}

	got := SuggestLabels("E-mail", candidates, DefaultSuggestionThreshold, 0)
	assert.Equal(t, []string{"Email", "Emails"}, SuggestionLabels(got))
	assert.InDelta(t, 1.0, got[0].Score, 0.0001)

	limited := SuggestLabels("E-mail", candidates, DefaultSuggestionThreshold, 1)
	assert.Len(t, limited, 1)

	assert.Empty(t, SuggestLabels("Baptism Date", candidates, DefaultSuggestionThreshold, 3))
}

func TestSuggestLabels_TiesPreferSharedWords(t *testing.T) {
	candidates := []string{"Homephones", "Home Phones", "Phone"}

	got := SuggestLabels("Home Phone", candidates, DefaultSuggestionThreshold, 0)
	assert.Equal(t, []string{"Home Phones", "Homephones"}, SuggestionLabels(got))
	assert.InDelta(t, got[0].Score, got[1].Score, 0.0001)
}
