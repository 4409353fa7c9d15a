package dispatchers

import (
	"cmp"
	"slices"
)

// maxSuggestionDistance is the largest edit distance still offered as a
// "did you mean".
const maxSuggestionDistance = 3

// levenshtein is the edit distance between a and b, compared rune by rune
// after case folding.
func levenshtein(a, b string) int {
	ra, rb := []rune(fold(a)), []rune(fold(b))
	if len(ra) == 0 {
		return len(rb)
	}

	// prev holds row i-1 of the distance matrix, cur row i.
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

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults names of nodes within a
// small edit distance of input, closest first and alphabetical on ties.
// Exact matches and index nodes are never suggested.
func FindSimilarCommands(input string, nodes []*Node, maxResults int) []string {
	if len(nodes) == 0 || input == "" {
		return nil
	}

	var found []suggestion
	for _, n := range nodes {
		if n.IsIndex() {
			continue
		}
		if d := levenshtein(input, n.Name); d > 0 && d <= maxSuggestionDistance {
			found = append(found, suggestion{name: n.Name, distance: d})
		}
	}

	slices.SortFunc(found, func(x, y suggestion) int {
		return cmp.Or(cmp.Compare(x.distance, y.distance), cmp.Compare(x.name, y.name))
	})
	if len(found) > maxResults {
		found = found[:maxResults]
	}

	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.name
	}
	return names
}
