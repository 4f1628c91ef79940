package routing

import (
	"math"

	"golang.org/x/exp/slices"

	"spire/utils"
)

// EdgeScore is one ranked outgoing edge.
type EdgeScore struct {
	Edge  int
	Dest  *Node
	Score float64
}

type memoKey struct {
	node  *Node
	depth int
}

// Scorer scores routes over the act map with configured per-room weights.
// A node's score is its own weight plus the best of its children's scores:
// the player is assumed to pick the best continuation. Scores are memoized
// per (node, depth), which keeps the scorer cheap enough to run at every map
// decision; it reads static room labels, never simulated combat outcomes.
type Scorer struct {
	weights  map[Room]float64
	tieBreak []Room
	memo     map[memoKey]float64
}

// NewScorer builds a scorer from a room-weight table and a room-type
// preference order used to break ties between equally scored edges.
func NewScorer(weights map[Room]float64, tieBreak []Room) *Scorer {
	return &Scorer{
		weights:  weights,
		tieBreak: tieBreak,
		memo:     map[memoKey]float64{},
	}
}

func (s *Scorer) weight(r Room) float64 {
	return s.weights[r]
}

// ScoreRoute aggregates reward over all paths from node down lookahead
// layers: weight(node) plus the max of its children's scores, with depth 0
// scoring the node's weight alone.
func (s *Scorer) ScoreRoute(node *Node, depth int) float64 {
	key := memoKey{node: node, depth: depth}
	if score, ok := s.memo[key]; ok {
		return score
	}

	score := s.weight(node.Room)
	if depth > 0 && len(node.Edges) > 0 {
		best := math.Inf(-1)
		for _, child := range node.Edges {
			if v := s.ScoreRoute(child, depth-1); v > best {
				best = v
			}
		}
		score += best
	}

	s.memo[key] = score
	return score
}

// RankEdges scores every outgoing edge of the current node over the given
// lookahead and returns them best-first. Equal scores are ordered by the
// configured room-type preference, then by destination ID for stability.
func (s *Scorer) RankEdges(current *Node, depth int) []EdgeScore {
	childDepth := depth - 1
	if childDepth < 0 {
		childDepth = 0
	}

	scores := make([]EdgeScore, len(current.Edges))
	for i, dest := range current.Edges {
		scores[i] = EdgeScore{Edge: i, Dest: dest, Score: s.ScoreRoute(dest, childDepth)}
	}

	slices.SortStableFunc(scores, func(a, b EdgeScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		if ra, rb := s.preference(a.Dest.Room), s.preference(b.Dest.Room); ra != rb {
			return ra - rb
		}
		switch {
		case a.Dest.ID < b.Dest.ID:
			return -1
		case a.Dest.ID > b.Dest.ID:
			return 1
		default:
			return 0
		}
	})
	return scores
}

// preference ranks a room by the tie-break order; unlisted rooms sort last.
func (s *Scorer) preference(r Room) int {
	i := utils.FindIndex(s.tieBreak, r)
	if i < 0 {
		return len(s.tieBreak)
	}
	return i
}
