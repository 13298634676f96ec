// Package config loads episode configuration from YAML layered over defaults.
package config

import (
	"os"

	"forage/game"
	"forage/learner"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	GreedyPolicy     = "greedy"
	MinimizingPolicy = "minimizing"
)

type BoardConfig struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	Home       game.Pos `yaml:"home"`
	Flowers    int      `yaml:"flowers"`
	Obstacles  int      `yaml:"obstacles"`
	FlowerLife int      `yaml:"flower_life"`
}

type AdversaryConfig struct {
	game.Adversary `yaml:",inline"`
	Policy         string `yaml:"policy"`
	ObstacleEvery  int    `yaml:"obstacle_every"` // greedy policy only
}

type SearchConfig struct {
	Depth   int          `yaml:"depth"`
	Weights game.Weights `yaml:"weights"`
}

type LearningConfig struct {
	Alpha      float64            `yaml:"alpha"`
	Gamma      float64            `yaml:"gamma"`
	Epsilon    float64            `yaml:"epsilon"`
	Thresholds learner.Thresholds `yaml:"thresholds"`
}

type PlannerConfig struct {
	Autopilot    bool    `yaml:"autopilot"`
	Noise        float64 `yaml:"noise"`
	AdverseNoise float64 `yaml:"adverse_noise"`
}

type Config struct {
	Goal      int                `yaml:"goal"`
	MaxTurns  int                `yaml:"max_turns"`
	Seed      uint64             `yaml:"seed"`
	Board     BoardConfig        `yaml:"board"`
	Forager   game.ForagerConfig `yaml:"forager"`
	Adversary AdversaryConfig    `yaml:"adversary"`
	Weather   game.WeatherConfig `yaml:"weather"`
	Search    SearchConfig       `yaml:"search"`
	Learning  LearningConfig     `yaml:"learning"`
	Planner   PlannerConfig      `yaml:"planner"`
}

func Default() Config {
	return Config{
		Goal:     game.DefaultGoal,
		MaxTurns: 300,
		Seed:     1,
		Board: BoardConfig{
			Rows:       9,
			Cols:       9,
			Home:       game.Pos{Row: 4, Col: 4},
			Flowers:    15,
			Obstacles:  4,
			FlowerLife: game.DefaultFlowerLife,
		},
		Forager: game.DefaultForagerConfig(),
		Adversary: AdversaryConfig{
			Adversary:     game.DefaultAdversary(),
			Policy:        MinimizingPolicy,
			ObstacleEvery: 3,
		},
		Weather: game.DefaultWeatherConfig(),
		Search: SearchConfig{
			Depth:   2,
			Weights: game.DefaultWeights(),
		},
		Learning: LearningConfig{
			Alpha:      learner.DefaultAlpha,
			Gamma:      learner.DefaultGamma,
			Epsilon:    learner.DefaultEpsilon,
			Thresholds: learner.DefaultThresholds(),
		},
		Planner: PlannerConfig{
			Autopilot:    true,
			Noise:        0.5,
			AdverseNoise: 2,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	b := c.Board
	switch {
	case c.Goal <= 0:
		return errors.Errorf("goal must be positive, got %d", c.Goal)
	case c.MaxTurns <= 0:
		return errors.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	case b.Rows <= 0 || b.Cols <= 0:
		return errors.Errorf("board must have positive dimensions, got %dx%d", b.Rows, b.Cols)
	case b.Home.Row < 0 || b.Home.Row >= b.Rows || b.Home.Col < 0 || b.Home.Col >= b.Cols:
		return errors.Errorf("home %s is off the %dx%d board", b.Home, b.Rows, b.Cols)
	case b.Flowers < 0 || b.Obstacles < 0 || b.FlowerLife <= 0:
		return errors.New("board flower and obstacle counts must be non-negative and flower life positive")
	}

	f := c.Forager
	if f.MaxLife <= 0 || f.MaxEnergy <= 0 || f.Capacity <= 0 {
		return errors.New("forager life, energy and capacity must be positive")
	}
	if f.MoveCost < 0 || f.CollectCost < 0 || f.NectarPerFlower < 0 || f.RestAmount < 0 {
		return errors.New("forager costs and amounts must be non-negative")
	}

	a := c.Adversary
	if a.PesticideRadius < 0 || a.ObstacleRadius < 0 || a.MaxObstacles < 0 {
		return errors.New("adversary radii and obstacle cap must be non-negative")
	}
	if a.Policy != GreedyPolicy && a.Policy != MinimizingPolicy {
		return errors.Errorf("unknown adversary policy %q", a.Policy)
	}

	w := c.Weather
	if w.AdverseProb < 0 || w.FavorableProb < 0 || w.AdverseProb+w.FavorableProb > 1 {
		return errors.Errorf("weather probabilities %.2f + %.2f must lie in [0,1]", w.AdverseProb, w.FavorableProb)
	}

	if c.Search.Depth < 0 {
		return errors.Errorf("search depth must be non-negative, got %d", c.Search.Depth)
	}

	l := c.Learning
	for name, v := range map[string]float64{"alpha": l.Alpha, "gamma": l.Gamma, "epsilon": l.Epsilon} {
		if v < 0 || v > 1 {
			return errors.Errorf("learning %s must lie in [0,1], got %v", name, v)
		}
	}

	if c.Planner.Noise < 0 || c.Planner.AdverseNoise < 0 {
		return errors.New("planner noise must be non-negative")
	}
	return nil
}
