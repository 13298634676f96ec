package agent

import (
	"forage/experiments/metrics"
	"forage/game"
)

type Agent interface {
	// FindMove returns the forager's next action and performance metrics (if collected) from the decision process
	FindMove(state *game.GameState) (game.ForagerAction, metrics.SearchMetric, bool)
}

// Learner is an Agent that improves from the transitions it takes part in.
type Learner interface {
	Agent
	Observe(prev *game.GameState, action game.ForagerAction, next *game.GameState) float64
}

// AdversaryPolicy chooses the adversary's action in the live game.
type AdversaryPolicy interface {
	Choose(state *game.GameState) (game.AdversaryAction, bool)
}
