package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cobalt/internal/usage"
)

const defaultSuggestionsCount = 3

// Resolution is the outcome of resolving a line against the tree.
type Resolution struct {
	Node *Node
	// Matched holds the tokens consumed while descending.
	Matched []string
	// Args holds the remaining tokens, passed to the parameter pipeline.
	Args []string
}

// Tokenize splits line on single spaces. Consecutive spaces yield empty
// tokens, which are kept.
func Tokenize(line string) []string {
	return strings.Split(line, " ")
}

// Resolve finds the node addressed by tokens. The first token must name a
// root; descent then follows matching children one token at a time and
// stops at the first token that matches no child. There is no backtracking:
// the deepest node reached is the result, and a result without a handler is
// a no-match error.
func Resolve(roots []*Node, tokens []string) (Resolution, error) {
	if len(tokens) == 0 {
		return Resolution{}, usage.NoMatch("")
	}

	current, consumed := locate(roots, tokens)
	if current == nil {
		suggestions := FindSimilarCommands(tokens[0], roots, defaultSuggestionsCount)
		return Resolution{}, usage.NoMatch(tokens[0], suggestions...)
	}

	if current.Handler == nil {
		var suggestions []string
		if consumed < len(tokens) {
			suggestions = FindSimilarCommands(tokens[consumed], current.Children, defaultSuggestionsCount)
		}
		return Resolution{}, usage.NoMatch(strings.Join(tokens[:min(consumed+1, len(tokens))], " "), suggestions...)
	}

	return Resolution{
		Node:    current,
		Matched: tokens[:consumed],
		Args:    tokens[consumed:],
	}, nil
}

// locate performs the descent of Resolve and returns the deepest node
// reached with the number of tokens consumed, or nil when the first token
// names no root.
func locate(roots []*Node, tokens []string) (*Node, int) {
	current := findByKey(roots, fold(tokens[0]))
	if current == nil {
		return nil, 0
	}

	consumed := 1
	for consumed < len(tokens) && len(current.Children) > 0 {
		child := current.Child(tokens[consumed])
		if child == nil {
			break
		}
		current = child
		consumed++
	}
	return current, consumed
}
