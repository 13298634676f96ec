package engine

import (
	"forage/config"
	"forage/game"
	"forage/planner"
	"forage/searcher/agent"

	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// Engine plays one live episode: the forager agent, the adversary policy and
// the weather take turns on a single GameState.
type Engine struct {
	State *game.GameState

	cfg       config.Config
	name      string
	forager   agent.Agent
	adversary agent.AdversaryPolicy
	heuristic *game.Heuristic
	planner   *planner.Planner
	rng       *rand.Rand
	maxTurns  int
}

// WithName labels the episode's game metric.
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithState replaces the scattered starting state.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state
		}
	}
}

// New scatters a fresh board from cfg using rng and places the forager on
// home. The same rng drives weather, reproduction and autopilot noise.
func New(cfg config.Config, forager agent.Agent, adversary agent.AdversaryPolicy, rng *rand.Rand, options ...Option) *Engine {
	if forager == nil || adversary == nil || rng == nil {
		panic("engine needs a forager agent, an adversary policy and a random source")
	}

	bc := cfg.Board
	board := game.NewBoard(bc.Rows, bc.Cols, bc.Home)
	obstacles := min(bc.Obstacles, cfg.Adversary.MaxObstacles)
	board.Scatter(rng, bc.Flowers, obstacles, bc.FlowerLife, bc.Home)

	e := &Engine{ // Default values
		State: game.NewGameState(
			board,
			game.NewForager(cfg.Forager, bc.Home),
			cfg.Adversary.Adversary,
			game.NewWeatherModel(cfg.Weather),
		),
		cfg:       cfg,
		name:      "forager",
		forager:   forager,
		adversary: adversary,
		heuristic: game.NewHeuristic(cfg.Search.Weights, cfg.Goal),
		planner:   planner.New(rng),
		rng:       rng,
		maxTurns:  cfg.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}
