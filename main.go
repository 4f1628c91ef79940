package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"spire/agent"
	"spire/config"
	"spire/engine"
	"spire/game"
	"spire/metrics"
	"spire/routing"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	a, err := agent.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build agent")
	}

	runBattleDemo(a)
	runRouteDemo(a)
}

// runBattleDemo plays a two-monster encounter to completion and writes the
// per-decision telemetry.
func runBattleDemo(a *agent.Agent) {
	e := engine.LocalEngine(a, demoEncounter())

	won, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("battle failed")
	}
	log.Info().Bool("won", won).Int("decisions", len(e.Records)).Msg("battle demo finished")

	writer, err := metrics.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteDecisionRecords(e.Records); err != nil {
		log.Fatal().Err(err).Msg("failed to write decision records")
	}
}

func runRouteDemo(a *agent.Agent) {
	rest := &routing.Node{ID: "2a", Room: routing.Rest}
	shop := &routing.Node{ID: "2b", Room: routing.Shop}
	fight := &routing.Node{ID: "1a", Room: routing.Fight, Edges: []*routing.Node{rest}}
	elite := &routing.Node{ID: "1b", Room: routing.Elite, Edges: []*routing.Node{shop}}
	current := &routing.Node{ID: "0", Room: routing.Unknown, Edges: []*routing.Node{fight, elite}}

	ranked, err := a.RankRoutes(&routing.Graph{Current: current})
	if err != nil {
		log.Fatal().Err(err).Msg("route ranking failed")
	}
	for _, edge := range ranked {
		log.Info().Str("room", string(edge.Dest.Room)).Float64("score", edge.Score).Msg("route option")
	}
	a.Memory().ObserveRoom(ranked[0].Dest.Room)
}

func demoEncounter() *game.CombatState {
	deck := []game.Card{
		{ID: game.Strike}, {ID: game.Strike}, {ID: game.Strike},
		{ID: game.Defend}, {ID: game.Defend},
	}
	return &game.CombatState{
		Player: game.Player{
			Actor:     game.Actor{Name: "Silent", HP: 61, MaxHP: 70},
			Energy:    3,
			MaxEnergy: 3,
			Hand: []game.Card{
				{ID: game.Strike}, {ID: game.Strike, Upgraded: true},
				{ID: game.Neutralize}, {ID: game.Defend}, {ID: game.Bash},
			},
			Draw:    deck,
			Potions: []game.Potion{{ID: game.FirePotion}},
		},
		Monsters: []game.Monster{
			{
				Actor:  game.Actor{Name: "Jaw Worm", HP: 42, MaxHP: 42},
				Intent: game.Intent{Kind: game.IntentAttack, Damage: 11, Hits: 1},
				Moves: []game.Intent{
					{Kind: game.IntentAttack, Damage: 11, Hits: 1},
					{Kind: game.IntentDefend, Block: 6},
					{Kind: game.IntentBuff, Buff: 3},
				},
			},
			{
				Actor:  game.Actor{Name: "Cultist", HP: 50, MaxHP: 50, Statuses: map[game.Status]int{game.Ritual: 3}},
				Intent: game.Intent{Kind: game.IntentAttack, Damage: 6, Hits: 1},
			},
		},
		Turn: 1,
	}
}
