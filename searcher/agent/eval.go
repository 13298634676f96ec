package agent

import (
	"forage/experiments/metrics"
	"forage/game"
	"forage/searcher"
)

type evaluationAgent struct {
	expectimax *searcher.Expectimax
}

// NewEvaluationAgent returns an agent that plays the expectimax choice every turn.
func NewEvaluationAgent(expectimax *searcher.Expectimax) Agent {
	return evaluationAgent{expectimax: expectimax}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.ForagerAction, metrics.SearchMetric, bool) {
	return a.expectimax.Search(state)
}
