package searcher

import (
	"fmt"

	"spire/game"
)

// ResponseModel decides what each monster does when the simulated turn passes
// to the enemy. Unknown enemy futures are collapsed to one deterministic
// substitute move per monster rather than branching, keeping the tree
// tractable and the search reproducible.
type ResponseModel int

const (
	// DeclaredIntent trusts each monster's declared intent as-is.
	DeclaredIntent ResponseModel = iota
	// ExpectedValue substitutes an attack for the average damage over the
	// monster's known move pool.
	ExpectedValue
	// WorstCase substitutes the highest-damage move in the pool.
	WorstCase
)

func ParseResponseModel(name string) (ResponseModel, error) {
	switch name {
	case "declared-intent":
		return DeclaredIntent, nil
	case "expected-value":
		return ExpectedValue, nil
	case "worst-case":
		return WorstCase, nil
	default:
		return DeclaredIntent, fmt.Errorf("unknown enemy response model %q", name)
	}
}

func (m ResponseModel) String() string {
	switch m {
	case ExpectedValue:
		return "expected-value"
	case WorstCase:
		return "worst-case"
	default:
		return "declared-intent"
	}
}

// Resolve produces the resolved-randomness record for an end-turn transition
// on the given state. The draw is resolved deterministically (discard order
// kept on reshuffle) so Apply stays bit-for-bit replayable without an RNG.
func (m ResponseModel) Resolve(cs *game.CombatState) game.Resolved {
	r := game.DefaultResolved()
	if m == DeclaredIntent {
		return r
	}

	moves := make([]game.Intent, len(cs.Monsters))
	for i := range cs.Monsters {
		mon := &cs.Monsters[i]
		switch m {
		case ExpectedValue:
			moves[i] = expectedMove(mon)
		case WorstCase:
			moves[i] = worstMove(mon)
		}
	}
	r.EnemyMoves = moves
	return r
}

func movePool(m *game.Monster) []game.Intent {
	if len(m.Moves) > 0 {
		return m.Moves
	}
	return []game.Intent{m.Intent}
}

func totalDamage(move game.Intent) int {
	if move.Kind != game.IntentAttack {
		return 0
	}
	hits := move.Hits
	if hits <= 0 {
		hits = 1
	}
	return move.Damage * hits
}

// worstMove picks the highest total damage move, first wins ties. A pool with
// no attacks falls back to the declared intent.
func worstMove(m *game.Monster) game.Intent {
	best := game.Intent{}
	bestDamage := 0
	for _, move := range movePool(m) {
		if d := totalDamage(move); d > bestDamage {
			best = move
			bestDamage = d
		}
	}
	if bestDamage == 0 {
		return m.Intent
	}
	return best
}

// expectedMove averages total attack damage over the pool, rounding down.
func expectedMove(m *game.Monster) game.Intent {
	pool := movePool(m)
	total := 0
	for _, move := range pool {
		total += totalDamage(move)
	}
	avg := total / len(pool)
	if avg == 0 {
		return m.Intent
	}
	return game.Intent{Kind: game.IntentAttack, Damage: avg, Hits: 1}
}
