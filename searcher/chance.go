package searcher

import "forage/game"

// chanceValue is the weather's ply: the probability-weighted value of every
// weather scenario.
func (s *search) chanceValue(state *game.GameState, depth int) float64 {
	s.metrics.AddChance()
	expected := 0.0
	for _, scenario := range state.Weather.Scenarios() {
		if scenario.Probability <= 0 {
			continue
		}
		s.metrics.AddClone()
		child := state.PlayWeather(scenario.Weather)
		expected += scenario.Probability * s.value(child, depth+1, chanceNode.next())
	}
	return expected
}
