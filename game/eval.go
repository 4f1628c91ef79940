package game

import "fmt"

// Dimension names one scoring component of a combat state.
type Dimension string

const (
	// EnemiesDefeated counts dead monsters.
	EnemiesDefeated Dimension = "enemies_defeated"
	// NetHPDelta is player health minus total living monster health.
	NetHPDelta Dimension = "net_hp_delta"
	// PlayerHP is the player's remaining health.
	PlayerHP Dimension = "player_hp"
	// MonsterHP is the negated total living monster health (higher is
	// better, like every other dimension).
	MonsterHP Dimension = "monster_hp"
	// EnergyRemaining is the player's unspent energy.
	EnergyRemaining Dimension = "energy_remaining"
	// BlockHeld is the player's current block.
	BlockHeld Dimension = "block_held"
	// PotionsHeld counts potions still in the belt.
	PotionsHeld Dimension = "potions_held"
	// TurnsTaken is the negated turn counter: fewer turns score higher.
	TurnsTaken Dimension = "turns_taken"
)

type dimensionFunc func(*CombatState) float64

var dimensionFuncs = map[Dimension]dimensionFunc{
	EnemiesDefeated: func(cs *CombatState) float64 {
		dead := 0
		for i := range cs.Monsters {
			if !cs.Monsters[i].Alive() {
				dead++
			}
		}
		return float64(dead)
	},
	NetHPDelta: func(cs *CombatState) float64 {
		return float64(cs.Player.HP - totalMonsterHP(cs))
	},
	PlayerHP: func(cs *CombatState) float64 {
		return float64(cs.Player.HP)
	},
	MonsterHP: func(cs *CombatState) float64 {
		return -float64(totalMonsterHP(cs))
	},
	EnergyRemaining: func(cs *CombatState) float64 {
		return float64(cs.Player.Energy)
	},
	BlockHeld: func(cs *CombatState) float64 {
		return float64(cs.Player.Block)
	},
	PotionsHeld: func(cs *CombatState) float64 {
		return float64(len(cs.Player.Potions))
	},
	TurnsTaken: func(cs *CombatState) float64 {
		return -float64(cs.Turn)
	},
}

func totalMonsterHP(cs *CombatState) int {
	total := 0
	for i := range cs.Monsters {
		if cs.Monsters[i].Alive() {
			total += cs.Monsters[i].HP
		}
	}
	return total
}

// DimensionWeight pairs a dimension with its weight. Order matters: it is the
// component order for lexicographic comparison.
type DimensionWeight struct {
	Dimension Dimension `yaml:"dimension"`
	Weight    float64   `yaml:"weight"`
}

// Score is the ordered tuple of weighted components for one state.
type Score struct {
	Components []float64
	Weighted   float64
}

// Evaluator scores combat states along configured dimensions. It is
// side-effect free; the weight table and comparison mode are injected, never
// hardcoded. The order it induces has ties; the searcher supplies the
// deterministic secondary key that makes selection total.
type Evaluator struct {
	weights       []DimensionWeight
	lexicographic bool
}

// NewEvaluator builds an evaluator from an ordered weight table. Every
// dimension must be known and the table must be non-empty.
func NewEvaluator(weights []DimensionWeight, lexicographic bool) (*Evaluator, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("evaluator needs at least one dimension")
	}
	for _, w := range weights {
		if _, ok := dimensionFuncs[w.Dimension]; !ok {
			return nil, fmt.Errorf("unknown evaluator dimension %q", w.Dimension)
		}
	}
	return &Evaluator{weights: weights, lexicographic: lexicographic}, nil
}

// Score evaluates one state. Components follow the configured dimension
// order, each already multiplied by its weight.
func (e *Evaluator) Score(cs *CombatState) Score {
	components := make([]float64, len(e.weights))
	total := 0.0
	for i, w := range e.weights {
		components[i] = w.Weight * dimensionFuncs[w.Dimension](cs)
		total += components[i]
	}
	return Score{Components: components, Weighted: total}
}

// Compare orders two scores: positive when a beats b, negative when b beats
// a, zero on a tie.
func (e *Evaluator) Compare(a, b Score) int {
	if e.lexicographic {
		for i := range a.Components {
			if i >= len(b.Components) {
				break
			}
			if a.Components[i] != b.Components[i] {
				if a.Components[i] > b.Components[i] {
					return 1
				}
				return -1
			}
		}
		return 0
	}
	switch {
	case a.Weighted > b.Weighted:
		return 1
	case a.Weighted < b.Weighted:
		return -1
	default:
		return 0
	}
}
