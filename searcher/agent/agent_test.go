package agent

import (
	"math"
	"testing"

	"forage/game"
	"forage/learner"
	"forage/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newState(home game.Pos) *game.GameState {
	return game.NewGameState(
		game.NewBoard(7, 7, home),
		game.NewForager(game.DefaultForagerConfig(), home),
		game.DefaultAdversary(),
		game.NewWeatherModel(game.DefaultWeatherConfig()),
	)
}

func TestEvaluationAgent(t *testing.T) {
	gs := newState(game.Pos{Row: 3, Col: 3})
	flower := game.Pos{Row: 3, Col: 4}
	gs.Board.PlantFlower(flower, game.NewFlower(game.DefaultFlowerLife))

	a := NewEvaluationAgent(searcher.NewExpectimax(searcher.WithDepth(1), searcher.WithMetrics()))
	action, metric, ok := a.FindMove(gs)

	require.True(t, ok)
	require.Equal(t, game.Collect(flower), action)
	require.Equal(t, len(gs.ForagerActions()), metric.RootActions)
}

func TestLearningAgent(t *testing.T) {
	h := game.DefaultHeuristic()
	newAgent := func() *learningAgent {
		q := learner.New(rand.New(rand.NewSource(1)), learner.WithEpsilon(0))
		return NewLearningAgent(q, h).(*learningAgent)
	}

	t.Run("picks a legal action", func(t *testing.T) {
		gs := newState(game.Pos{Row: 3, Col: 3})
		gs.Board.PlantFlower(game.Pos{Row: 3, Col: 4}, game.NewFlower(game.DefaultFlowerLife))

		action, metric, ok := newAgent().FindMove(gs)
		require.True(t, ok)
		require.Contains(t, gs.ForagerActions(), action)
		require.Equal(t, len(gs.ForagerActions()), metric.RootActions)
	})

	t.Run("reward is the scaled heuristic delta", func(t *testing.T) {
		prev := newState(game.Pos{Row: 3, Col: 3})
		prev.Board.PlantFlower(game.Pos{Row: 3, Col: 4}, game.NewFlower(game.DefaultFlowerLife))
		next := prev.Play(game.Collect(game.Pos{Row: 3, Col: 4}))

		expected := (h.Evaluate(next) - h.Evaluate(prev)) * RewardScale
		require.InDelta(t, expected, newAgent().Reward(prev, next), 1e-9)
		require.Greater(t, expected, 0.0)
	})

	t.Run("terminal rewards", func(t *testing.T) {
		prev := newState(game.Pos{Row: 3, Col: 3})
		prev.Board.PlantFlower(game.Pos{Row: 0, Col: 0}, game.NewFlower(game.DefaultFlowerLife))
		a := newAgent()

		won := prev.Clone()
		won.Board.Nectar = h.Goal
		require.Equal(t, TerminalReward, a.Reward(prev, won))

		dead := prev.Clone()
		dead.Forager.Life = 0
		require.Equal(t, -TerminalReward, a.Reward(prev, dead))
	})

	t.Run("observe updates the table", func(t *testing.T) {
		prev := newState(game.Pos{Row: 3, Col: 3})
		prev.Board.PlantFlower(game.Pos{Row: 3, Col: 4}, game.NewFlower(game.DefaultFlowerLife))
		a := newAgent()

		action := game.Collect(game.Pos{Row: 3, Col: 4})
		next := prev.Play(action)
		tdError := a.Observe(prev, action, next)

		require.Greater(t, tdError, 0.0)
		require.Equal(t, 1, a.q.Len())
		require.Greater(t, a.q.Value(a.q.Abstract(prev), action), 0.0)
	})
}

func TestMinimizingAdversary(t *testing.T) {
	h := game.DefaultHeuristic()
	gs := newState(game.Pos{Row: 0, Col: 0})
	gs.Forager.Pos = game.Pos{Row: 3, Col: 3}
	gs.Board.PlantFlower(game.Pos{Row: 3, Col: 4}, game.NewFlower(game.DefaultFlowerLife))
	gs.Board.PlantFlower(game.Pos{Row: 6, Col: 6}, game.NewFlower(game.DefaultFlowerLife))

	action, ok := NewMinimizingAdversary(h).Choose(gs)
	require.True(t, ok)

	worst := math.Inf(1)
	for _, a := range gs.AdversaryActions() {
		worst = math.Min(worst, h.Evaluate(gs.PlayAdversary(a)))
	}
	require.Equal(t, worst, h.Evaluate(gs.PlayAdversary(action)))
	require.Equal(t, game.Contaminate(game.Pos{Row: 3, Col: 4}), action, "Poisoning the nearby flower hurts most")

	t.Run("nothing to do", func(t *testing.T) {
		quiet := gs.Clone()
		quiet.Adversary = game.Adversary{}
		_, ok := NewMinimizingAdversary(h).Choose(quiet)
		require.False(t, ok)
	})
}

func TestGreedyAdversary(t *testing.T) {
	t.Run("contaminates first", func(t *testing.T) {
		gs := newState(game.Pos{Row: 0, Col: 0})
		gs.Forager.Pos = game.Pos{Row: 3, Col: 3}
		gs.Board.PlantFlower(game.Pos{Row: 3, Col: 5}, game.NewFlower(game.DefaultFlowerLife))

		action, ok := NewGreedyAdversary(3).Choose(gs)
		require.True(t, ok)
		require.Equal(t, game.Contaminate(game.Pos{Row: 3, Col: 5}), action)
	})

	t.Run("obstacles are rate limited", func(t *testing.T) {
		gs := newState(game.Pos{Row: 0, Col: 0})
		gs.Forager.Pos = game.Pos{Row: 3, Col: 3}
		p := NewGreedyAdversary(3)

		var placed []int
		for turn := 1; turn <= 7; turn++ {
			gs.Turn = turn
			action, ok := p.Choose(gs)
			if ok {
				require.Equal(t, game.ObstructAction, action.Type)
				placed = append(placed, turn)
			}
		}
		require.Equal(t, []int{1, 4, 7}, placed)
	})
}
