package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spire/game"
)

func jawWorm() *game.CombatState {
	return &game.CombatState{
		Player: game.Player{Actor: game.Actor{HP: 40, MaxHP: 40}, Energy: 3, MaxEnergy: 3},
		Monsters: []game.Monster{{
			Actor:  game.Actor{Name: "jaw worm", HP: 42, MaxHP: 42},
			Intent: game.Intent{Kind: game.IntentDefend, Block: 6},
			Moves: []game.Intent{
				{Kind: game.IntentAttack, Damage: 11, Hits: 1},
				{Kind: game.IntentAttack, Damage: 7, Hits: 1},
				{Kind: game.IntentDefend, Block: 6},
			},
		}},
	}
}

func TestParseResponseModel(t *testing.T) {
	tests := []struct {
		name string
		want ResponseModel
	}{
		{name: "declared-intent", want: DeclaredIntent},
		{name: "expected-value", want: ExpectedValue},
		{name: "worst-case", want: WorstCase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponseModel(tt.name)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.name, got.String())
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseResponseModel("clairvoyant")

		require.Error(t, err)
	})
}

func TestResponseModelResolve(t *testing.T) {
	t.Run("declared intent leaves enemy moves unset", func(t *testing.T) {
		got := DeclaredIntent.Resolve(jawWorm())

		require.Nil(t, got.EnemyMoves, "Apply falls back to the declared intent")
		require.Equal(t, 5, got.DrawCount)
	})

	t.Run("worst case substitutes the biggest attack", func(t *testing.T) {
		got := WorstCase.Resolve(jawWorm())

		require.Len(t, got.EnemyMoves, 1)
		require.Equal(t, game.Intent{Kind: game.IntentAttack, Damage: 11, Hits: 1}, got.EnemyMoves[0])
	})

	t.Run("expected value averages damage over the move pool", func(t *testing.T) {
		got := ExpectedValue.Resolve(jawWorm())

		require.Len(t, got.EnemyMoves, 1)
		require.Equal(t, game.Intent{Kind: game.IntentAttack, Damage: 6, Hits: 1}, got.EnemyMoves[0],
			"(11+7+0)/3 floors to 6")
	})

	t.Run("a pool with no attacks falls back to the declared intent", func(t *testing.T) {
		state := jawWorm()
		state.Monsters[0].Moves = []game.Intent{{Kind: game.IntentDefend, Block: 6}}

		got := WorstCase.Resolve(state)

		require.Equal(t, state.Monsters[0].Intent, got.EnemyMoves[0])
	})
}
