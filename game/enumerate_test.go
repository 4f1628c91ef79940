package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalActions(t *testing.T) {
	t.Run("yields one play per affordable card and living target", func(t *testing.T) {
		state := duelState()
		state.Player.Potions = []Potion{{ID: FirePotion}}

		got := LegalActions(state)

		want := []Action{
			PlayCard(0, 0),
			PlayCard(1, 0),
			PlayCard(2, NoTarget),
			UsePotion(0, 0),
			EndTurn(),
		}
		require.Equal(t, want, got, "enumeration order must be deterministic")
	})

	t.Run("skips cards the player cannot afford", func(t *testing.T) {
		state := duelState()
		state.Player.Energy = 0

		got := LegalActions(state)

		require.Equal(t, []Action{EndTurn()}, got, "only end-turn remains at zero energy")
	})

	t.Run("skips dead monsters as targets", func(t *testing.T) {
		state := duelState()
		state.Monsters = append(state.Monsters, Monster{
			Actor:  Actor{Name: "second", HP: 10, MaxHP: 10},
			Intent: Intent{Kind: IntentAttack, Damage: 5, Hits: 1},
		})
		state.Monsters[0].HP = 0

		got := LegalActions(state)

		for _, a := range got {
			if a.Type == PlayCardAction && a.Target != NoTarget {
				require.Equal(t, 1, a.Target, "dead monster must not be targeted")
			}
		}
	})

	t.Run("multi-target cards enumerate once", func(t *testing.T) {
		state := duelState()
		state.Monsters = append(state.Monsters, Monster{Actor: Actor{HP: 10, MaxHP: 10}})
		state.Player.Hand = []Card{{ID: Cleave}}

		got := LegalActions(state)

		require.Equal(t, []Action{PlayCard(0, NoTarget), EndTurn()}, got)
	})

	t.Run("always includes end-turn on a live battle", func(t *testing.T) {
		state := duelState()
		state.Player.Hand = nil
		state.Player.Energy = 0

		got := LegalActions(state)

		require.NotEmpty(t, got, "a non-terminal state must have at least one action")
		require.Equal(t, EndTurn(), got[len(got)-1])
	})

	t.Run("terminal states yield nothing", func(t *testing.T) {
		state := duelState()
		state.Monsters[0].HP = 0

		require.Nil(t, LegalActions(state))
	})
}
