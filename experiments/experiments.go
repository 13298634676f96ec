package experiments

import (
	"forage/config"
	"forage/engine"
	"forage/experiments/metrics"
	"forage/game"
	"forage/learner"
	"forage/searcher"
	"forage/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Kind string

const (
	Expectimax Kind = "expectimax"
	QLearning  Kind = "qlearning"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Expectimax, QLearning:
		return k, nil
	default:
		return "", errors.Errorf("unknown agent kind %q", s)
	}
}

type Result struct {
	Games []metrics.GameRecord
	Turns []metrics.TurnRecord
}

// Run plays episodes with one agent kind. Episode i is seeded with
// cfg.Seed+i. A q-learning agent keeps its table across episodes.
func Run(cfg config.Config, kind Kind, episodes int) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "invalid config")
	}
	if episodes <= 0 {
		return Result{}, errors.Errorf("episodes must be positive, got %d", episodes)
	}

	heuristic := game.NewHeuristic(cfg.Search.Weights, cfg.Goal)
	forager, err := createAgent(cfg, kind, heuristic)
	if err != nil {
		return Result{}, err
	}

	log.Info().Msgf("starting %d %s episodes...", episodes, kind)

	var result Result
	for i := 0; i < episodes; i++ {
		episodeCfg := cfg
		episodeCfg.Seed = cfg.Seed + uint64(i)
		rng := rand.New(rand.NewSource(episodeCfg.Seed))

		e := engine.New(episodeCfg, forager, createAdversary(cfg, heuristic), rng, engine.WithName(string(kind)))
		outcome, gameMetric, moveMetrics := e.Run()

		result.Games = append(result.Games, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			result.Turns = append(result.Turns, metrics.NewTurnRecord(i+1, string(kind), mm))
		}
		log.Info().Msgf("completed episode %d of %d: %s", i+1, episodes, outcome)
	}

	log.Info().Msgf("completed %s episodes", kind)
	return result, nil
}

// Save stores game records as CSV and turn records as parquet under
// root/kind/<timestamp> and returns that directory.
func Save(result Result, root string, kind Kind) (string, error) {
	writer, err := metrics.NewWriter(root, string(kind))
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(result.Turns); err != nil {
		return "", err
	}
	log.Info().Msg("stored turn records")
	return writer.Dir(), nil
}

func createAgent(cfg config.Config, kind Kind, heuristic *game.Heuristic) (agent.Agent, error) {
	switch kind {
	case Expectimax:
		return agent.NewEvaluationAgent(searcher.NewExpectimax(
			searcher.WithDepth(cfg.Search.Depth),
			searcher.WithHeuristic(heuristic),
			searcher.WithMetrics(),
		)), nil
	case QLearning:
		l := cfg.Learning
		q := learner.New(
			rand.New(rand.NewSource(cfg.Seed)),
			learner.WithAlpha(l.Alpha),
			learner.WithGamma(l.Gamma),
			learner.WithEpsilon(l.Epsilon),
			learner.WithThresholds(l.Thresholds),
		)
		return agent.NewLearningAgent(q, heuristic), nil
	default:
		return nil, errors.Errorf("unknown agent kind %q", kind)
	}
}

func createAdversary(cfg config.Config, heuristic *game.Heuristic) agent.AdversaryPolicy {
	if cfg.Adversary.Policy == config.GreedyPolicy {
		return agent.NewGreedyAdversary(cfg.Adversary.ObstacleEvery)
	}
	return agent.NewMinimizingAdversary(heuristic)
}
