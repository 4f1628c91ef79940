package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"spire/config"
	"spire/game"
	"spire/metrics"
	"spire/routing"
	"spire/searcher"
)

// Agent is the decision entry point the dispatch layer calls into: one method
// per decision kind, both synchronous. The dispatch layer owns translating
// the returned Action into protocol command text; the agent never emits
// commands itself.
type Agent struct {
	cfg      config.Config
	searcher *searcher.Searcher
	scorer   *routing.Scorer
	memory   *Memory
}

// New builds an agent from an injected configuration.
func New(cfg config.Config) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	evaluator, err := game.NewEvaluator(cfg.EvaluatorWeights, cfg.Lexicographic)
	if err != nil {
		return nil, err
	}
	model, err := cfg.ResponseModel()
	if err != nil {
		return nil, err
	}

	s := searcher.NewSearcher(evaluator,
		searcher.WithHorizon(cfg.Horizon),
		searcher.WithNodeBudget(cfg.NodeBudget),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithResponseModel(model),
		searcher.WithMetrics(),
	)

	return &Agent{
		cfg:      cfg,
		searcher: s,
		scorer:   routing.NewScorer(cfg.RouteWeights, cfg.TieBreakOrder),
		memory:   NewMemory(),
	}, nil
}

// SelectAction is the combat decision entry point.
func (a *Agent) SelectAction(state *game.CombatState) (game.Action, metrics.SearchMetric, error) {
	action, metric, err := a.searcher.FindAction(state)
	if err != nil {
		return game.Action{}, metric, err
	}
	if metric.BudgetExhausted {
		log.Debug().
			Int("nodes", metric.NodesExpanded).
			Int("budget", metric.NodeBudget).
			Msg("combat decision came from a partial search")
	}
	return action, metric, nil
}

// RankRoutes is the map decision entry point: every outgoing edge of the
// current position scored and ranked, best first, so the caller can apply
// its own override policy on top.
func (a *Agent) RankRoutes(g *routing.Graph) ([]routing.EdgeScore, error) {
	if g == nil || g.Current == nil || len(g.Current.Edges) == 0 {
		return nil, fmt.Errorf("%w: no outgoing edges at current map position", searcher.ErrNoLegalAction)
	}
	return a.scorer.RankEdges(g.Current, a.cfg.RouteLookahead), nil
}

// Memory exposes the agent's run-history context for callers to update as
// outcomes land.
func (a *Agent) Memory() *Memory {
	return a.memory
}
