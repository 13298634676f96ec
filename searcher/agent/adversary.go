package agent

import (
	"forage/game"
	"math"
)

type minimizingAdversary struct {
	heuristic *game.Heuristic
}

// NewMinimizingAdversary returns the policy that plays the action leaving the
// forager with the lowest heuristic value, over the same actions a MIN node
// considers. Ties keep the first action.
func NewMinimizingAdversary(heuristic *game.Heuristic) AdversaryPolicy {
	return minimizingAdversary{heuristic: heuristic}
}

func (a minimizingAdversary) Choose(state *game.GameState) (game.AdversaryAction, bool) {
	actions := state.AdversaryActions()
	if len(actions) == 0 {
		return game.AdversaryAction{}, false
	}
	best := 0
	bestValue := math.Inf(1)
	for i, action := range actions {
		if value := a.heuristic.Evaluate(state.PlayAdversary(action)); value < bestValue {
			bestValue = value
			best = i
		}
	}
	return actions[best], true
}

type greedyAdversary struct {
	every        int
	lastObstacle int
}

// NewGreedyAdversary returns the first-match policy: contaminate a flower when
// one is in range, otherwise drop an obstacle at most once every `every` turns.
func NewGreedyAdversary(every int) AdversaryPolicy {
	return &greedyAdversary{every: max(1, every), lastObstacle: math.MinInt / 2}
}

func (a *greedyAdversary) Choose(state *game.GameState) (game.AdversaryAction, bool) {
	actions := state.AdversaryActions()
	for _, action := range actions {
		if action.Type == game.ContaminateAction {
			return action, true
		}
	}
	if state.Turn-a.lastObstacle < a.every {
		return game.AdversaryAction{}, false
	}
	for _, action := range actions {
		if action.Type == game.ObstructAction {
			a.lastObstacle = state.Turn
			return action, true
		}
	}
	return game.AdversaryAction{}, false
}
