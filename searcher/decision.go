package searcher

import (
	"forage/game"
	"math"
)

// maxValue is the forager's ply. With no legal action the state is scored as is.
func (s *search) maxValue(state *game.GameState, depth int) float64 {
	s.metrics.AddMax()
	actions := state.ForagerActions()
	if len(actions) == 0 {
		return s.evaluate(state)
	}

	best := math.Inf(-1)
	for _, action := range actions {
		child := s.play(state, action)
		best = math.Max(best, s.value(child, depth+1, maxNode.next()))
	}
	return best
}

// minValue is the adversary's ply. With no legal action the weather moves
// next at the same depth.
func (s *search) minValue(state *game.GameState, depth int) float64 {
	s.metrics.AddMin()
	actions := state.AdversaryActions()
	if len(actions) == 0 {
		return s.value(state, depth, minNode.next())
	}

	worst := math.Inf(1)
	for _, action := range actions {
		s.metrics.AddClone()
		child := state.PlayAdversary(action)
		worst = math.Min(worst, s.value(child, depth+1, minNode.next()))
	}
	return worst
}
