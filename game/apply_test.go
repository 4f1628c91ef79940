package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func duelState() *CombatState {
	return &CombatState{
		Player: Player{
			Actor:     Actor{Name: "player", HP: 50, MaxHP: 50},
			Energy:    3,
			MaxEnergy: 3,
			Hand:      []Card{{ID: Strike}, {ID: Strike}, {ID: Defend}},
			Draw:      []Card{{ID: Strike}, {ID: Defend}, {ID: Strike}, {ID: Defend}, {ID: Strike}},
		},
		Monsters: []Monster{{
			Actor:  Actor{Name: "enemy", HP: 12, MaxHP: 12},
			Intent: Intent{Kind: IntentAttack, Damage: 8, Hits: 1},
		}},
		Turn: 1,
	}
}

func TestApplyPlayCard(t *testing.T) {
	t.Run("deducts cost and moves the card to discard", func(t *testing.T) {
		state := duelState()

		got, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 2, got.Player.Energy, "Strike should cost 1 energy")
		require.Len(t, got.Player.Hand, 2, "played card should leave the hand")
		require.Equal(t, []Card{{ID: Strike}}, got.Player.Discard, "played card should land in discard")
		require.Equal(t, 6, got.Monsters[0].HP, "Strike should deal 6")
	})

	t.Run("never mutates the input state", func(t *testing.T) {
		state := duelState()
		fingerprint := state.Hash()

		_, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, fingerprint, state.Hash(), "input state must be untouched")
	})

	t.Run("playing both strikes kills the enemy and marks it dead", func(t *testing.T) {
		state := duelState()

		mid, err := Apply(state, PlayCard(0, 0), DefaultResolved())
		require.NoError(t, err)
		got, err := Apply(mid, PlayCard(0, 0), DefaultResolved())
		require.NoError(t, err)

		require.Equal(t, 0, got.Monsters[0].HP, "two strikes should reduce 12 hp to 0")
		require.False(t, got.Monsters[0].Alive(), "enemy at 0 hp should be dead")
		require.True(t, got.Over(), "battle should be over")
		require.Empty(t, got.LivingMonsters(), "dead enemy should leave the target set")
	})

	t.Run("exhausting card lands in the exhaust zone", func(t *testing.T) {
		state := duelState()
		state.Player.Hand = []Card{{ID: Backstab}}

		got, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, []Card{{ID: Backstab}}, got.Player.Exhaust)
		require.Empty(t, got.Player.Discard)
	})

	t.Run("draw effect refills the hand from the draw pile", func(t *testing.T) {
		state := duelState()
		state.Player.Hand = []Card{{ID: PommelStrike}}

		got, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, []Card{{ID: Strike}}, got.Player.Hand, "should draw the top of the draw pile")
		require.Len(t, got.Player.Draw, 4)
	})
}

func TestApplyCardConservation(t *testing.T) {
	t.Run("ordinary plays conserve the card total", func(t *testing.T) {
		state := duelState()
		before := state.Player.CardCount()

		got, err := Apply(state, PlayCard(2, NoTarget), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, before, got.Player.CardCount(), "cards must only move between zones")
	})

	t.Run("end turn conserves the card total", func(t *testing.T) {
		state := duelState()
		before := state.Player.CardCount()

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, before, got.Player.CardCount())
	})

	t.Run("anger is the named exception: it creates one copy", func(t *testing.T) {
		state := duelState()
		state.Player.Hand = []Card{{ID: Anger}}
		before := state.Player.CardCount()

		got, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, before+1, got.Player.CardCount(), "anger adds a copy of itself")
		require.Equal(t, []Card{{ID: Anger}, {ID: Anger}}, got.Player.Discard)
	})
}

func TestDamageResolution(t *testing.T) {
	t.Run("block absorbs before health", func(t *testing.T) {
		target := Actor{HP: 20, MaxHP: 20, Block: 5}

		dealDamage(&target, 8)

		require.Equal(t, 0, target.Block, "block should be spent first")
		require.Equal(t, 17, target.HP, "only unblocked damage reaches health")
	})

	t.Run("block exceeding damage keeps health intact", func(t *testing.T) {
		target := Actor{HP: 20, MaxHP: 20, Block: 10}

		dealDamage(&target, 4)

		require.Equal(t, 6, target.Block)
		require.Equal(t, 20, target.HP)
	})

	t.Run("health clamps at zero", func(t *testing.T) {
		target := Actor{HP: 3, MaxHP: 20}

		dealDamage(&target, 100)

		require.Equal(t, 0, target.HP, "health must never go negative")
	})

	t.Run("strength raises outgoing damage", func(t *testing.T) {
		attacker := Actor{Statuses: map[Status]int{Strength: 2}}

		require.Equal(t, 8, outgoingDamage(&attacker, 6))
	})

	t.Run("weak shaves a quarter off outgoing damage", func(t *testing.T) {
		attacker := Actor{Statuses: map[Status]int{Weak: 1}}

		require.Equal(t, 4, outgoingDamage(&attacker, 6), "6*3/4 floors to 4")
	})

	t.Run("vulnerable amplifies incoming damage", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].Statuses = map[Status]int{Vulnerable: 2}

		got, err := Apply(state, PlayCard(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 3, got.Monsters[0].HP, "6*3/2=9 against 12 hp")
	})

	t.Run("bash then strike stacks the vulnerable bonus", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].HP = 20
		state.Monsters[0].MaxHP = 20
		state.Player.Hand = []Card{{ID: Bash}, {ID: Strike}}

		mid, err := Apply(state, PlayCard(0, 0), DefaultResolved())
		require.NoError(t, err)
		require.Equal(t, 12, mid.Monsters[0].HP, "bash deals 8 before vulnerable lands")

		got, err := Apply(mid, PlayCard(0, 0), DefaultResolved())
		require.NoError(t, err)
		require.Equal(t, 3, got.Monsters[0].HP, "strike hits for 9 into vulnerable")
	})
}

func TestApplyEndTurn(t *testing.T) {
	t.Run("enemy attacks, then the next turn starts fresh", func(t *testing.T) {
		state := duelState()

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 42, got.Player.HP, "declared attack 8 lands unblocked")
		require.Equal(t, 3, got.Player.Energy, "energy resets")
		require.Equal(t, 0, got.Player.Block, "block resets at turn start")
		require.Equal(t, 2, got.Turn)
		require.Len(t, got.Player.Hand, 5, "a fresh hand of five is drawn")
	})

	t.Run("player block absorbs the enemy attack first", func(t *testing.T) {
		state := duelState()
		state.Player.Block = 5

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 47, got.Player.HP, "8-5=3 reaches health")
	})

	t.Run("resolved enemy moves override the declared intent", func(t *testing.T) {
		state := duelState()
		r := DefaultResolved()
		r.EnemyMoves = []Intent{{Kind: IntentDefend, Block: 6}}

		got, err := Apply(state, EndTurn(), r)

		require.NoError(t, err)
		require.Equal(t, 50, got.Player.HP, "defending enemy deals no damage")
		require.Equal(t, 6, got.Monsters[0].Block)
	})

	t.Run("dead monsters do not act", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].HP = 0

		_, err := Apply(state, EndTurn(), DefaultResolved())

		require.ErrorIs(t, err, ErrIllegalAction, "battle is already over")
	})

	t.Run("ritual grants strength before the attack", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].Statuses = map[Status]int{Ritual: 3}

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 3, got.Monsters[0].Stacks(Strength))
		require.Equal(t, 39, got.Player.HP, "attack lands at 8+3")
	})

	t.Run("poison ticks through block and decays", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].Statuses = map[Status]int{Poison: 4}
		state.Monsters[0].Intent = Intent{Kind: IntentDefend, Block: 5}

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 8, got.Monsters[0].HP, "poison 4 ignores block")
		require.Equal(t, 3, got.Monsters[0].Stacks(Poison))
	})

	t.Run("turn statuses decay once per round", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].Statuses = map[Status]int{Vulnerable: 1, Weak: 2}

		got, err := Apply(state, EndTurn(), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 0, got.Monsters[0].Stacks(Vulnerable), "single stack expires")
		require.Equal(t, 1, got.Monsters[0].Stacks(Weak))
	})

	t.Run("reshuffle permutation reorders the discard into the draw pile", func(t *testing.T) {
		state := duelState()
		state.Player.Hand = nil
		state.Player.Draw = nil
		state.Player.Discard = []Card{{ID: Strike}, {ID: Defend}, {ID: Bash}}
		r := Resolved{DrawCount: 3, Reshuffle: []int{2, 0, 1}}

		got, err := Apply(state, EndTurn(), r)

		require.NoError(t, err)
		require.Equal(t, []Card{{ID: Bash}, {ID: Strike}, {ID: Defend}}, got.Player.Hand)
		require.Empty(t, got.Player.Discard)
	})
}

func TestApplyDeterminism(t *testing.T) {
	t.Run("identical inputs give bit-identical outputs", func(t *testing.T) {
		r := Resolved{DrawCount: 5, EnemyMoves: []Intent{{Kind: IntentAttack, Damage: 8, Hits: 1}}}

		first, err := Apply(duelState(), EndTurn(), r)
		require.NoError(t, err)
		second, err := Apply(duelState(), EndTurn(), r)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, first.Hash(), second.Hash())
	})
}

func TestApplyIllegalActions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CombatState)
		action Action
	}{
		{
			name:   "card costing more than available energy",
			modify: func(cs *CombatState) { cs.Player.Energy = 0 },
			action: PlayCard(0, 0),
		},
		{
			name:   "hand index out of range",
			action: PlayCard(9, 0),
		},
		{
			name:   "target out of range",
			action: PlayCard(0, 4),
		},
		{
			name:   "dead target",
			modify: func(cs *CombatState) { cs.Monsters = append(cs.Monsters, Monster{Actor: Actor{HP: 0}}) },
			action: PlayCard(0, 1),
		},
		{
			name:   "untargeted card given a target",
			action: PlayCard(2, 0),
		},
		{
			name:   "potion index out of range",
			action: UsePotion(0, 0),
		},
		{
			name:   "path choice against a combat state",
			action: PathChoice(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := duelState()
			if tt.modify != nil {
				tt.modify(state)
			}

			_, err := Apply(state, tt.action, DefaultResolved())

			require.ErrorIs(t, err, ErrIllegalAction)
		})
	}
}

func TestApplyPotion(t *testing.T) {
	t.Run("fire potion burns the target and is consumed", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].HP = 30
		state.Monsters[0].MaxHP = 30
		state.Player.Potions = []Potion{{ID: FirePotion}}

		got, err := Apply(state, UsePotion(0, 0), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 10, got.Monsters[0].HP)
		require.Empty(t, got.Player.Potions)
		require.Equal(t, 3, got.Player.Energy, "potions cost no energy")
	})

	t.Run("energy potion grants energy", func(t *testing.T) {
		state := duelState()
		state.Player.Potions = []Potion{{ID: EnergyPotion}}

		got, err := Apply(state, UsePotion(0, NoTarget), DefaultResolved())

		require.NoError(t, err)
		require.Equal(t, 5, got.Player.Energy)
	})
}
