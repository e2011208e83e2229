package search

import "strings"

const MaxHistory = 5

// PushHistory puts term at the front of history, dropping an earlier copy of
// it and anything beyond MaxHistory. Blank terms leave history unchanged.
func PushHistory(history []string, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return history
	}

	out := make([]string, 0, MaxHistory)
	out = append(out, term)
	for _, h := range history {
		if len(out) == MaxHistory {
			break
		}
		if !strings.EqualFold(h, term) {
			out = append(out, h)
		}
	}
	return out
}
