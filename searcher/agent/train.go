package agent

import (
	"forage/experiments/metrics"
	"forage/game"
	"forage/learner"
	"time"
)

const (
	TerminalReward = 100.0
	RewardScale    = 0.01 // heuristic points per unit of reward
)

type learningAgent struct {
	q         *learner.QLearner
	heuristic *game.Heuristic
}

// NewLearningAgent returns an epsilon-greedy Q-learning agent. Rewards are the
// change in heuristic value across a transition.
func NewLearningAgent(q *learner.QLearner, heuristic *game.Heuristic) Learner {
	if q == nil || heuristic == nil {
		panic("learning agent needs a q-learner and a heuristic")
	}
	return &learningAgent{q: q, heuristic: heuristic}
}

func (a *learningAgent) FindMove(state *game.GameState) (game.ForagerAction, metrics.SearchMetric, bool) {
	start := time.Now()
	key := a.q.Abstract(state)
	legal := state.ForagerActions()
	action, ok := a.q.ChooseAction(key, legal)
	return action, metrics.SearchMetric{
		Duration:    time.Since(start),
		RootActions: len(legal),
		BestValue:   a.q.Value(key, action),
	}, ok
}

// Observe updates the table with the transition prev -action-> next and
// returns the absolute TD error.
func (a *learningAgent) Observe(prev *game.GameState, action game.ForagerAction, next *game.GameState) float64 {
	reward := a.Reward(prev, next)
	var nextLegal []game.ForagerAction
	if !next.IsTerminal(a.heuristic.Goal) {
		nextLegal = next.ForagerActions()
	}
	return a.q.Update(a.q.Abstract(prev), action, reward, a.q.Abstract(next), nextLegal)
}

// Reward is +/-TerminalReward when next ends the game and the scaled
// heuristic delta otherwise.
func (a *learningAgent) Reward(prev, next *game.GameState) float64 {
	if next.IsTerminal(a.heuristic.Goal) {
		if next.Board.Nectar >= a.heuristic.Goal {
			return TerminalReward
		}
		return -TerminalReward
	}
	return (a.heuristic.Evaluate(next) - a.heuristic.Evaluate(prev)) * RewardScale
}
