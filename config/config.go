package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spire/game"
	"spire/routing"
	"spire/searcher"
)

// Config carries every knob the decision core recognizes. It is plain data
// injected at call time; nothing here is consulted globally. Different
// strategies ship different files: a boss-fight profile can weight survival
// over speed without touching code.
type Config struct {
	Horizon    int `yaml:"horizon"`
	NodeBudget int `yaml:"node_budget"`
	Goroutines int `yaml:"goroutines"`

	// EvaluatorWeights is ordered: it doubles as the component order for
	// lexicographic comparison.
	EvaluatorWeights []game.DimensionWeight `yaml:"evaluator_weights"`
	Lexicographic    bool                   `yaml:"lexicographic"`

	// EnemyResponseModel is one of declared-intent, expected-value,
	// worst-case.
	EnemyResponseModel string `yaml:"enemy_response_model"`

	RouteWeights  map[routing.Room]float64 `yaml:"route_weights"`
	TieBreakOrder []routing.Room           `yaml:"tie_break_order"`
	// RouteLookahead is the number of map layers scored past the current
	// position.
	RouteLookahead int `yaml:"route_lookahead"`
}

// Default returns a playable baseline configuration.
func Default() Config {
	return Config{
		Horizon:    3,
		NodeBudget: 2000,
		Goroutines: 1,
		EvaluatorWeights: []game.DimensionWeight{
			{Dimension: game.EnemiesDefeated, Weight: 100},
			{Dimension: game.PlayerHP, Weight: 3},
			{Dimension: game.MonsterHP, Weight: 1},
			{Dimension: game.EnergyRemaining, Weight: 0.1},
			{Dimension: game.PotionsHeld, Weight: 0.5},
		},
		EnemyResponseModel: "declared-intent",
		RouteWeights: map[routing.Room]float64{
			routing.Fight:    1,
			routing.Elite:    3,
			routing.Shop:     2,
			routing.Rest:     2.5,
			routing.Event:    1.5,
			routing.Treasure: 2,
			routing.Unknown:  0.5,
		},
		TieBreakOrder: []routing.Room{
			routing.Rest, routing.Treasure, routing.Shop,
			routing.Fight, routing.Event, routing.Elite, routing.Unknown,
		},
		RouteLookahead: 3,
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot honor. Both search bounds
// are mandatory: no search may run unbounded.
func (c Config) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Horizon)
	}
	if c.NodeBudget <= 0 {
		return fmt.Errorf("node_budget must be positive, got %d", c.NodeBudget)
	}
	if len(c.EvaluatorWeights) == 0 {
		return fmt.Errorf("evaluator_weights must not be empty")
	}
	if _, err := searcher.ParseResponseModel(c.EnemyResponseModel); err != nil {
		return err
	}
	if c.RouteLookahead < 0 {
		return fmt.Errorf("route_lookahead must not be negative, got %d", c.RouteLookahead)
	}
	return nil
}

// ResponseModel parses the configured enemy response model.
func (c Config) ResponseModel() (searcher.ResponseModel, error) {
	return searcher.ParseResponseModel(c.EnemyResponseModel)
}
