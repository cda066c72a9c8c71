package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// words wraps candidate names for fuzzy matching
type words []string

func (w words) String(i int) string {
	return strings.ToLower(w[i])
}

func (w words) Len() int {
	return len(w)
}

// Closest returns the candidate that best matches word, ignoring case.
// Matches require every character of word to appear in order in the candidate,
// or the candidate to be a subsequence of word (e.g. "i18" or "i18nn").
func Closest(word string, candidates []string) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || len(candidates) == 0 {
		return "", false
	}

	// fuzzy sorts matches by score (descending)
	if matches := fuzzy.FindFrom(word, words(candidates)); len(matches) > 0 {
		return candidates[matches[0].Index], true
	}

	best, bestLen := -1, 0
	for i, c := range candidates {
		c = strings.ToLower(c)
		if len(c) < 2 || len(c) <= bestLen {
			continue
		}
		if len(fuzzy.Find(c, []string{word})) > 0 {
			best, bestLen = i, len(c)
		}
	}
	if best < 0 {
		return "", false
	}
	return candidates[best], true
}
