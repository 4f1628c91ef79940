package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"spire/agent"
	"spire/game"
	"spire/metrics"
)

// MaxTurns caps a battle so a stalled decision loop cannot spin forever.
const MaxTurns = 100

// Engine plays one battle to completion with an agent, standing in for the
// protocol-driven dispatch loop during demos and integration tests. The real
// world here follows declared intents; search-time enemy modeling stays
// inside the agent.
type Engine struct {
	State   *game.CombatState
	agent   *agent.Agent
	Records []metrics.DecisionRecord
}

func LocalEngine(a *agent.Agent, state *game.CombatState) *Engine {
	if a == nil {
		panic("need an agent")
	}
	return &Engine{
		State: state,
		agent: a,
	}
}

// Run executes the battle loop until it ends or MaxTurns passes. Returns
// whether the player won.
func (e *Engine) Run() (bool, error) {
	mem := e.agent.Memory()
	step := 0

	for !e.State.Over() {
		if e.State.Turn > MaxTurns {
			return false, fmt.Errorf("battle exceeded %d turns", MaxTurns)
		}

		action, metric, err := e.agent.SelectAction(e.State)
		if err != nil {
			return false, fmt.Errorf("turn %d: %w", e.State.Turn, err)
		}

		step++
		e.Records = append(e.Records, metrics.DecisionRecord{
			Step:         step,
			Action:       action.String(),
			SearchMetric: metric,
		})

		before := e.State
		next, err := game.Apply(e.State, action, game.DefaultResolved())
		if err != nil {
			return false, fmt.Errorf("turn %d applying %s: %w", e.State.Turn, action, err)
		}
		e.State = next

		mem.ObserveDamage(before.Player.HP - next.Player.HP)
		switch action.Type {
		case game.EndTurnAction:
			mem.ObserveTurn()
			log.Info().Int("turn", next.Turn).Int("hp", next.Player.HP).Msg("turn ended")
		case game.UsePotionAction:
			mem.ObservePotion()
		}

		log.Debug().Str("action", action.String()).Int("nodes", metric.NodesExpanded).Msg("action committed")
	}

	won := e.State.Player.Alive()
	if won {
		mem.ObserveVictory()
	}
	log.Info().Bool("won", won).Int("hp", e.State.Player.HP).Int("turns", e.State.Turn).Msg("battle over")
	return won, nil
}
