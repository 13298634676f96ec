package game

import "math"

const (
	WinScore  = 100000.0
	LossScore = -WinScore
)

// Evaluates a game state to a scalar utility from the forager's perspective.
type Evaluate func(*GameState) float64

// Weights scales each heuristic component.
type Weights struct {
	LiveFlowers   float64 `yaml:"live_flowers"`
	Pollinated    float64 `yaml:"pollinated"`
	HomeNectar    float64 `yaml:"home_nectar"`
	CarriedNectar float64 `yaml:"carried_nectar"`
	Life          float64 `yaml:"life"`
	Energy        float64 `yaml:"energy"`
	Proximity     float64 `yaml:"proximity"`
	Density       float64 `yaml:"density"`
	Obstacles     float64 `yaml:"obstacles"`
}

func DefaultWeights() Weights {
	return Weights{
		LiveFlowers:   10,
		Pollinated:    8,
		HomeNectar:    15,
		CarriedNectar: 5,
		Life:          3,
		Energy:        2,
		Proximity:     1,
		Density:       5,
		Obstacles:     5,
	}
}

// Heuristic is the static evaluation used at search leaves.
type Heuristic struct {
	Weights Weights
	Goal    int // home nectar that wins the game
}

func NewHeuristic(w Weights, goal int) *Heuristic {
	if goal <= 0 {
		panic("goal must be positive")
	}
	return &Heuristic{Weights: w, Goal: goal}
}

func DefaultHeuristic() *Heuristic {
	return NewHeuristic(DefaultWeights(), DefaultGoal)
}

// Evaluate scores gs. Terminal states short-circuit to LossScore/WinScore;
// otherwise the weighted components are summed and the obstacle penalty
// subtracted.
func (h *Heuristic) Evaluate(gs *GameState) float64 {
	if !gs.Forager.IsAlive() {
		return LossScore
	}
	if gs.Board.CountLiveFlowers() == 0 {
		return LossScore
	}
	if gs.Board.Nectar >= h.Goal {
		return WinScore
	}

	return h.BoardHealth(gs) +
		h.Condition(gs) +
		h.Progress(gs) +
		h.Proximity(gs) +
		h.Density(gs) -
		h.ObstaclePenalty(gs)
}

// BoardHealth rewards live and pollinated flowers and penalizes contamination.
func (h *Heuristic) BoardHealth(gs *GameState) float64 {
	var live, pollinated, contaminated, pesticide int
	for _, planted := range gs.Board.Flowers() {
		f := planted.Flower
		if !f.IsAlive() {
			continue
		}
		live++
		if f.Pollinated {
			pollinated++
		}
		if f.IsContaminated() {
			contaminated++
			pesticide += f.Pesticide
		}
	}
	return h.Weights.LiveFlowers*float64(live) +
		h.Weights.Pollinated*float64(pollinated) -
		5*float64(contaminated) -
		3*float64(pesticide)
}

// Condition scores the forager's life and energy, with hard penalties once
// either runs low.
func (h *Heuristic) Condition(gs *GameState) float64 {
	lifeRatio := gs.Forager.LifeRatio()
	energyRatio := gs.Forager.EnergyRatio()

	value := h.Weights.Life*lifeRatio*100 + h.Weights.Energy*energyRatio*100
	if lifeRatio < 0.3 {
		value -= 500
	}
	if energyRatio < 0.2 {
		value -= 200
	}
	return value
}

// Progress rewards stored and carried nectar plus milestone bonuses past
// 25%, 50% and 75% of the goal.
func (h *Heuristic) Progress(gs *GameState) float64 {
	home := float64(gs.Board.Nectar)
	carried := float64(gs.Forager.Nectar)
	value := h.Weights.HomeNectar*home + h.Weights.CarriedNectar*carried

	progress := (home + carried) / float64(h.Goal)
	switch {
	case progress > 0.75:
		value += 1000
	case progress > 0.5:
		value += 500
	case progress > 0.25:
		value += 200
	}
	return value
}

// Proximity pulls the forager home once it carries 60% of its capacity and
// toward the nearest clean live flower otherwise.
func (h *Heuristic) Proximity(gs *GameState) float64 {
	f := gs.Forager
	w := h.Weights.Proximity

	if float64(f.Nectar) >= 0.6*float64(f.Capacity) {
		d := f.Pos.Chebyshev(gs.Board.Home)
		if d == 0 {
			return 50 * w
		}
		return 20.0 / float64(d) * w
	}

	nearest := math.MaxInt
	for _, planted := range gs.Board.Flowers() {
		if planted.Flower.IsAlive() && !planted.Flower.IsContaminated() {
			nearest = min(nearest, f.Pos.Chebyshev(planted.Pos))
		}
	}
	switch nearest {
	case math.MaxInt:
		return 0
	case 0:
		return 20 * w
	default:
		return 10.0 / float64(nearest) * w
	}
}

// Density measures how much clean live flora surrounds the forager.
func (h *Heuristic) Density(gs *GameState) float64 {
	density := 0.0
	for _, planted := range gs.Board.Flowers() {
		if planted.Flower.IsAlive() && !planted.Flower.IsContaminated() {
			d := max(1, gs.Forager.Pos.Chebyshev(planted.Pos))
			density += 10.0 / float64(d)
		}
	}
	return density * h.Weights.Density
}

func (h *Heuristic) ObstaclePenalty(gs *GameState) float64 {
	return h.Weights.Obstacles * float64(gs.Board.ObstacleCount())
}
