package searcher

import (
	"forage/experiments/metrics"
	"forage/game"
	"math"

	"github.com/rs/zerolog/log"
)

const DefaultDepth = 3

type Option func(e *Expectimax)

// Expectimax is a depth-bounded max/min/chance tree search choosing the
// forager's action. It holds configuration only, so one value can serve
// concurrent searches.
type Expectimax struct {
	depth       int
	heuristic   *game.Heuristic
	evaluate    game.Evaluate
	customEval  bool
	withMetrics bool
}

func WithDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth >= 0 {
			e.depth = depth
		}
	}
}

// WithHeuristic sets the goal used for terminal detection and, unless
// WithEvaluationFn was given, the leaf evaluation.
func WithHeuristic(h *game.Heuristic) Option {
	return func(e *Expectimax) {
		if h != nil {
			e.heuristic = h
			if !e.customEval {
				e.evaluate = h.Evaluate
			}
		}
	}
}

// WithEvaluationFn overrides the leaf evaluation, keeping the heuristic's goal.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectimax) {
		if evaluate != nil {
			e.evaluate = evaluate
			e.customEval = true
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.withMetrics = true
	}
}

func NewExpectimax(options ...Option) *Expectimax {
	h := game.DefaultHeuristic()
	e := &Expectimax{ // Default values
		depth:     DefaultDepth,
		heuristic: h,
		evaluate:  h.Evaluate,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectimax) Depth() int {
	return e.depth
}

// BestAction returns the forager action with the highest expected value, or
// false when the forager has no legal action.
func (e *Expectimax) BestAction(state *game.GameState) (game.ForagerAction, bool) {
	action, _, ok := e.Search(state)
	return action, ok
}

// Search is BestAction plus the metrics of the search. Ties keep the first
// action in enumeration order.
func (e *Expectimax) Search(state *game.GameState) (game.ForagerAction, metrics.SearchMetric, bool) {
	s := e.newSearch()
	actions := state.ForagerActions()
	s.metrics.Start(e.depth, len(actions))
	if len(actions) == 0 {
		return game.ForagerAction{}, s.metrics.Complete(), false
	}

	s.metrics.AddMax()
	bestIndex := -1
	bestValue := math.Inf(-1)
	for i, action := range actions {
		child := s.play(state, action)
		// The next level belongs to the adversary
		// A NaN or -Inf child still yields an action
		if value := s.value(child, 1, minNode); bestIndex < 0 || value > bestValue {
			bestValue = value
			bestIndex = i
		}
	}
	s.metrics.SetBestValue(bestValue)
	metric := s.metrics.Complete()

	event := log.Debug().
		Str("action", actions[bestIndex].String()).
		Float64("value", bestValue)
	if e.withMetrics {
		event = event.Int("nodes", metric.Nodes()).Int("clones", metric.Clones)
	}
	event.Msg("expectimax search complete")
	return actions[bestIndex], metric, true
}

// Value is the expected value of state with the forager to move.
func (e *Expectimax) Value(state *game.GameState) float64 {
	return e.newSearch().value(state, 0, maxNode)
}

// search carries the per-call collector so Expectimax itself stays immutable.
type search struct {
	depth    int
	goal     int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func (e *Expectimax) newSearch() *search {
	s := &search{
		depth:    e.depth,
		goal:     e.heuristic.Goal,
		evaluate: e.evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	if e.withMetrics {
		s.metrics = metrics.NewCollector()
	}
	return s
}

func (s *search) value(state *game.GameState, depth int, kind nodeKind) float64 {
	if depth >= s.depth || state.IsTerminal(s.goal) {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}

	switch kind {
	case maxNode:
		return s.maxValue(state, depth)
	case minNode:
		return s.minValue(state, depth)
	case chanceNode:
		return s.chanceValue(state, depth)
	default:
		panic("Unexpected node type")
	}
}

func (s *search) play(state *game.GameState, action game.ForagerAction) *game.GameState {
	s.metrics.AddClone()
	return state.Play(action)
}
