package searcher

import (
	"errors"
	"fmt"
	"sync"

	"spire/game"
	"spire/metrics"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalAction signals that enumeration produced nothing at the search
// root. This is fatal for the decision; the caller must fall back to its own
// default rather than expect a retry from the searcher.
var ErrNoLegalAction = errors.New("no legal action")

type Option func(s *Searcher)

// Searcher picks the best next action by breadth-first expansion of the
// action tree up to a horizon of player actions, bounded by a node budget.
// Enemy turns are collapsed to one deterministic response per the configured
// model, so a search is fully reproducible.
type Searcher struct {
	horizon    int
	nodeBudget int
	goroutines int
	evaluator  *game.Evaluator
	model      ResponseModel
	collector  metrics.Collector
}

func WithHorizon(horizon int) Option {
	return func(s *Searcher) {
		if horizon > 0 {
			s.horizon = horizon
		}
	}
}

func WithNodeBudget(budget int) Option {
	return func(s *Searcher) {
		if budget > 0 {
			s.nodeBudget = budget
		}
	}
}

// WithGoroutines spreads root branches over n workers. Branch budgets are
// fixed up front, so the result does not depend on scheduling.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithResponseModel(model ResponseModel) Option {
	return func(s *Searcher) {
		s.model = model
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collector = metrics.NewCollector()
	}
}

func NewSearcher(evaluator *game.Evaluator, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		evaluator:  evaluator,
		model:      DeclaredIntent,
		collector:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.evaluator == nil {
		panic("Must provide an evaluator")
	}
	if s.horizon <= 0 || s.nodeBudget <= 0 {
		panic("Must specify search horizon and node budget")
	}
	return s
}

type branchResult struct {
	best      *searchNode
	exhausted bool
	err       error
}

// FindAction returns the best action found for the state, with the metrics
// of the search that found it. Budget exhaustion is not an error: the metric
// records it and the best-of-partial-search action is still returned.
func (s *Searcher) FindAction(state *game.CombatState) (game.Action, metrics.SearchMetric, error) {
	s.collector.Start(s.horizon, s.nodeBudget)

	actions := game.LegalActions(state)
	if len(actions) == 0 {
		return game.Action{}, s.collector.Complete(), fmt.Errorf("%w: enumeration is empty at the search root", ErrNoLegalAction)
	}

	root := &searchNode{state: state}
	exhausted := false

	// The root's children are always expanded, budget or not: the engine
	// must have one scored candidate per enumerated action.
	branches := make([]*searchNode, len(actions))
	for i, action := range actions {
		child, err := s.expand(root, action)
		if err != nil {
			return game.Action{}, s.collector.Complete(), err
		}
		branches[i] = child
	}

	remaining := s.nodeBudget - len(actions)
	if remaining < 0 {
		remaining = 0
		exhausted = true
	}
	shares := splitBudget(remaining, len(branches))

	results := s.expandBranches(branches, shares)

	var best *searchNode
	for _, result := range results {
		if result.err != nil {
			return game.Action{}, s.collector.Complete(), result.err
		}
		exhausted = exhausted || result.exhausted
		if better(s.evaluator, result.best, best) {
			best = result.best
		}
	}

	s.collector.SetBudgetExhausted(exhausted)
	s.collector.SetBestScore(best.score.Weighted)
	if exhausted {
		log.Debug().Int("budget", s.nodeBudget).Msg("node budget exhausted, returning best of partial search")
	}

	return best.path[0], s.collector.Complete(), nil
}

func (s *Searcher) expandBranches(branches []*searchNode, shares []int) []branchResult {
	results := make([]branchResult, len(branches))

	if s.goroutines <= 1 {
		for i, branch := range branches {
			results[i] = s.expandBranch(branch, shares[i])
		}
		return results
	}

	task := make(chan int, len(branches))
	for i := range branches {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < s.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				results[i] = s.expandBranch(branches[i], shares[i])
			}
		}()
	}
	wg.Wait()

	return results
}

// expandBranch runs breadth-first expansion below one root child. Every
// created node is scored and eligible as best, so enlarging the budget can
// only improve the branch's best score.
func (s *Searcher) expandBranch(branch *searchNode, budget int) branchResult {
	best := branch
	queue := []*searchNode{branch}
	exhausted := false

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.state.Over() || node.depth >= s.horizon {
			s.collector.AddLeaf()
			continue
		}

		if budget <= 0 {
			// Cut off: this node and everything left in the queue
			// stay as scored leaves.
			exhausted = true
			s.collector.AddLeaf()
			for range queue {
				s.collector.AddLeaf()
			}
			break
		}

		actions := game.LegalActions(node.state)
		for _, action := range actions {
			if budget <= 0 {
				exhausted = true
				break
			}
			child, err := s.expand(node, action)
			if err != nil {
				return branchResult{err: err}
			}
			budget--
			if better(s.evaluator, child, best) {
				best = child
			}
			queue = append(queue, child)
		}
	}

	return branchResult{best: best, exhausted: exhausted}
}

// expand applies one action and scores the resulting node. End-turn
// transitions carry the enemy moves resolved by the response model.
func (s *Searcher) expand(parent *searchNode, action game.Action) (*searchNode, error) {
	resolved := game.DefaultResolved()
	if action.Type == game.EndTurnAction {
		resolved = s.model.Resolve(parent.state)
	}
	state, err := game.Apply(parent.state, action, resolved)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", action, err)
	}

	node := newSearchNode(parent, action, state)
	node.score = s.evaluator.Score(state)
	s.collector.AddNode()
	return node, nil
}

// splitBudget divides the remaining budget evenly over branches; earlier
// branches take the remainder so the split is deterministic.
func splitBudget(budget, branches int) []int {
	shares := make([]int, branches)
	if branches == 0 {
		return shares
	}
	base := budget / branches
	extra := budget % branches
	for i := range shares {
		shares[i] = base
		if i < extra {
			shares[i]++
		}
	}
	return shares
}
