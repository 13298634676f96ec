package game

import (
	"math"

	"golang.org/x/exp/rand"
)

type Weather int

const (
	Calm Weather = iota
	Adverse
	Favorable
)

func (w Weather) String() string {
	switch w {
	case Calm:
		return "calm"
	case Adverse:
		return "adverse"
	case Favorable:
		return "favorable"
	default:
		panic("unexpected weather")
	}
}

// WeatherConfig holds the transition probabilities and reproduction odds.
// The calm probability is whatever adverse and favorable leave over.
type WeatherConfig struct {
	AdverseProb      float64 `yaml:"adverse_prob"`
	FavorableProb    float64 `yaml:"favorable_prob"`
	BaseReproduction float64 `yaml:"base_reproduction"`
	FavorableBonus   float64 `yaml:"favorable_bonus"`
	Period           int     `yaml:"period"` // turns between rolls
}

func DefaultWeatherConfig() WeatherConfig {
	return WeatherConfig{
		AdverseProb:      0.10,
		FavorableProb:    0.15,
		BaseReproduction: 0.20,
		FavorableBonus:   0.20,
		Period:           4,
	}
}

// Scenario is one weather outcome and its probability.
type Scenario struct {
	Weather     Weather
	Probability float64
}

// WeatherModel is the stochastic environment. Current only changes through Roll or Force.
type WeatherModel struct {
	WeatherConfig
	Current Weather
}

func NewWeatherModel(cfg WeatherConfig) *WeatherModel {
	if cfg.AdverseProb < 0 || cfg.FavorableProb < 0 || cfg.AdverseProb+cfg.FavorableProb > 1 {
		panic("weather probabilities must be non-negative and sum to at most 1")
	}
	return &WeatherModel{WeatherConfig: cfg, Current: Calm}
}

func (w *WeatherModel) CalmProb() float64 {
	return math.Max(0, 1-w.AdverseProb-w.FavorableProb)
}

// Scenarios lists every weather outcome with its probability. The
// probabilities sum to 1.
func (w *WeatherModel) Scenarios() []Scenario {
	return []Scenario{
		{Weather: Adverse, Probability: w.AdverseProb},
		{Weather: Favorable, Probability: w.FavorableProb},
		{Weather: Calm, Probability: w.CalmProb()},
	}
}

// ShouldRoll reports whether turn is a weather turn.
func (w *WeatherModel) ShouldRoll(turn int) bool {
	return w.Period > 0 && turn > 0 && turn%w.Period == 0
}

// Roll draws the next weather from rng and makes it current.
func (w *WeatherModel) Roll(rng *rand.Rand) Weather {
	r := rng.Float64()
	switch {
	case r < w.AdverseProb:
		w.Current = Adverse
	case r < w.AdverseProb+w.FavorableProb:
		w.Current = Favorable
	default:
		w.Current = Calm
	}
	return w.Current
}

func (w *WeatherModel) Force(weather Weather) {
	w.Current = weather
}

// ApplyEffects applies the immediate board effect of the current weather.
// Adverse weather washes one pesticide unit off every contaminated live
// flower; the other kinds only change reproduction odds. It returns the
// number of flowers affected.
func (w *WeatherModel) ApplyEffects(b *Board) int {
	if w.Current != Adverse {
		return 0
	}
	washed := 0
	for i := range b.flowers {
		f := &b.flowers[i].Flower
		if f.IsAlive() && f.IsContaminated() {
			f.ReducePesticide(1)
			washed++
		}
	}
	return washed
}

func (w *WeatherModel) ReproductionProbability() float64 {
	p := w.BaseReproduction
	if w.Current == Favorable {
		p += w.FavorableBonus
	}
	return p
}

// TryReproduce lets the pollinated live flower on p seed a new flower into a
// random empty neighbor cell.
func (w *WeatherModel) TryReproduce(b *Board, p Pos, rng *rand.Rand) (Pos, bool) {
	f := b.FlowerAt(p)
	if f == nil || !f.IsAlive() || !f.Pollinated {
		return Pos{}, false
	}
	if rng.Float64() > w.ReproductionProbability() {
		return Pos{}, false
	}
	free := b.EmptyNeighbors(p)
	if len(free) == 0 {
		return Pos{}, false
	}
	seedling := free[rng.Intn(len(free))]
	return seedling, b.PlantFlower(seedling, NewFlower(f.MaxLife))
}

// Cycle is the outcome of one weather turn.
type Cycle struct {
	Weather   Weather
	Washed    int
	Seedlings []Pos
}

// RunCycle rolls the weather, applies its effects, then gives every
// pollinated flower a chance to reproduce. It does nothing off-period.
func (w *WeatherModel) RunCycle(b *Board, turn int, rng *rand.Rand) (Cycle, bool) {
	if !w.ShouldRoll(turn) {
		return Cycle{}, false
	}
	cycle := Cycle{Weather: w.Roll(rng)}
	cycle.Washed = w.ApplyEffects(b)

	var parents []Pos
	for _, planted := range b.LiveFlowers() {
		if planted.Flower.Pollinated {
			parents = append(parents, planted.Pos)
		}
	}
	for _, p := range parents {
		if seedling, ok := w.TryReproduce(b, p, rng); ok {
			cycle.Seedlings = append(cycle.Seedlings, seedling)
		}
	}
	return cycle, true
}

func (w *WeatherModel) Clone() *WeatherModel {
	clone := *w
	return &clone
}
