package searcher

import "spire/game"

// searchNode is one explored state plus the action path that reached it from
// the real root state. Nodes are exclusively owned by the search that created
// them; nothing aliases them from outside.
type searchNode struct {
	state *game.CombatState
	path  []game.Action
	// key is the concatenated action keys of the path. Comparing keys
	// lexically is the deterministic secondary tie-break that makes best
	// selection total.
	key   string
	depth int
	score game.Score
}

func newSearchNode(parent *searchNode, action game.Action, state *game.CombatState) *searchNode {
	path := make([]game.Action, len(parent.path), len(parent.path)+1)
	copy(path, parent.path)
	return &searchNode{
		state: state,
		path:  append(path, action),
		key:   parent.key + action.Key(),
		depth: parent.depth + 1,
	}
}

// better reports whether a should replace b as the best node: higher score
// wins, equal scores fall back to lexical path-key order.
func better(e *game.Evaluator, a, b *searchNode) bool {
	if b == nil {
		return true
	}
	cmp := e.Compare(a.score, b.score)
	return cmp > 0 || (cmp == 0 && a.key < b.key)
}
