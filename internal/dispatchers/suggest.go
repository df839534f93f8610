package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 3

// levenshtein is the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// FindSimilarCommands returns up to maxResults names close to input,
// closest first. A group name such as "notebook" matches its
// "notebook-*" commands. An exact match is not suggested.
func FindSimilarCommands(input string, names []string, maxResults int) []string {
	if len(names) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var found []scored
	for _, name := range names {
		dist := levenshtein(input, name)
		if group, _, ok := strings.Cut(name, "-"); ok && strings.EqualFold(group, input) {
			dist = 1
		}
		if dist > 0 && dist <= maxSuggestDistance {
			found = append(found, scored{name, dist})
		}
	}

	slices.SortFunc(found, func(x, y scored) int {
		return cmp.Or(cmp.Compare(x.dist, y.dist), strings.Compare(x.name, y.name))
	})
	if len(found) > maxResults {
		found = found[:maxResults]
	}

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}
	return out
}
