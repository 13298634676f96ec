package game

// newTestState returns a rows x cols episode with default entities, the
// forager standing on home.
func newTestState(rows, cols int, home Pos) *GameState {
	return NewGameState(
		NewBoard(rows, cols, home),
		NewForager(DefaultForagerConfig(), home),
		DefaultAdversary(),
		NewWeatherModel(DefaultWeatherConfig()),
	)
}
