package learner

import (
	"forage/game"
	"math"

	"golang.org/x/exp/rand"
)

const (
	DefaultAlpha   = 0.1
	DefaultGamma   = 0.9
	DefaultEpsilon = 0.2
)

// StateKey is the abstract state the table is keyed on.
type StateKey struct {
	Quadrant  int // 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right
	Abundance int // 0 scarce, 1 medium, 2 abundant
	Energy    int // 1 when energy is above the safety threshold
}

// Thresholds discretize flower count and energy.
type Thresholds struct {
	FlowersLow    int `yaml:"flowers_low"`
	FlowersMedium int `yaml:"flowers_medium"`
	SafeEnergy    int `yaml:"safe_energy"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{FlowersLow: 5, FlowersMedium: 10, SafeEnergy: 20}
}

type entry struct {
	state  StateKey
	action game.ForagerAction
}

type Option func(q *QLearner)

// QLearner is a tabular, epsilon-greedy Q-learning policy. The table lives
// in memory only.
type QLearner struct {
	alpha      float64
	gamma      float64
	epsilon    float64
	thresholds Thresholds
	rng        *rand.Rand
	table      map[entry]float64
}

func WithAlpha(alpha float64) Option {
	return func(q *QLearner) {
		if alpha >= 0 && alpha <= 1 {
			q.alpha = alpha
		}
	}
}

func WithGamma(gamma float64) Option {
	return func(q *QLearner) {
		if gamma >= 0 && gamma <= 1 {
			q.gamma = gamma
		}
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(q *QLearner) {
		if epsilon >= 0 && epsilon <= 1 {
			q.epsilon = epsilon
		}
	}
}

func WithThresholds(t Thresholds) Option {
	return func(q *QLearner) {
		q.thresholds = t
	}
}

func New(rng *rand.Rand, options ...Option) *QLearner {
	if rng == nil {
		panic("q-learner needs a random source")
	}
	q := &QLearner{
		alpha:      DefaultAlpha,
		gamma:      DefaultGamma,
		epsilon:    DefaultEpsilon,
		thresholds: DefaultThresholds(),
		rng:        rng,
		table:      make(map[entry]float64),
	}
	for _, option := range options {
		option(q)
	}
	return q
}

// Abstract reduces gs to its quadrant, flower abundance and energy level.
func (q *QLearner) Abstract(gs *game.GameState) StateKey {
	b, f := gs.Board, gs.Forager

	quadrant := 0
	if 2*f.Pos.Col >= b.Cols {
		quadrant++
	}
	if 2*f.Pos.Row >= b.Rows {
		quadrant += 2
	}

	abundance := 0
	switch flowers := b.CountLiveFlowers(); {
	case flowers > q.thresholds.FlowersMedium:
		abundance = 2
	case flowers > q.thresholds.FlowersLow:
		abundance = 1
	}

	energy := 0
	if f.Energy > q.thresholds.SafeEnergy {
		energy = 1
	}

	return StateKey{Quadrant: quadrant, Abundance: abundance, Energy: energy}
}

// Value is the stored estimate for (state, action), zero when unseen.
func (q *QLearner) Value(state StateKey, action game.ForagerAction) float64 {
	return q.table[entry{state: state, action: action}]
}

// Len is the number of (state, action) pairs learned so far.
func (q *QLearner) Len() int {
	return len(q.table)
}

// ChooseAction explores uniformly with probability epsilon and otherwise
// exploits the best estimate. Ties go to the earliest action in legal.
func (q *QLearner) ChooseAction(state StateKey, legal []game.ForagerAction) (game.ForagerAction, bool) {
	if len(legal) == 0 {
		return game.ForagerAction{}, false
	}
	if q.rng.Float64() < q.epsilon {
		return legal[q.rng.Intn(len(legal))], true
	}
	return q.greedy(state, legal), true
}

func (q *QLearner) greedy(state StateKey, legal []game.ForagerAction) game.ForagerAction {
	best := legal[0]
	bestValue := math.Inf(-1)
	for _, action := range legal {
		if v := q.Value(state, action); v > bestValue {
			bestValue = v
			best = action
		}
	}
	return best
}

func (q *QLearner) maxValue(state StateKey, legal []game.ForagerAction) float64 {
	if len(legal) == 0 {
		return 0
	}
	best := math.Inf(-1)
	for _, action := range legal {
		best = math.Max(best, q.Value(state, action))
	}
	return best
}

// Update applies Q(s,a) += alpha * (reward + gamma * max Q(s',a') - Q(s,a))
// and returns the absolute TD error.
func (q *QLearner) Update(state StateKey, action game.ForagerAction, reward float64, next StateKey, nextLegal []game.ForagerAction) float64 {
	key := entry{state: state, action: action}
	current := q.table[key]

	target := reward + q.gamma*q.maxValue(next, nextLegal)
	tdError := target - current
	q.table[key] = current + q.alpha*tdError

	return math.Abs(tdError)
}
