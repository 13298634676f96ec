package engine

import (
	"forage/experiments/metrics"
	"forage/game"
	"forage/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Run plays turns until the episode ends or the turn limit is reached. An
// episode cut off by the limit reports game.Ongoing.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Agent:     e.name,
		Seed:      e.cfg.Seed,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	learner, learning := e.forager.(agent.Learner)
	outcome := e.State.Outcome(e.cfg.Goal)

	log.Info().Msgf("episode started with %d flowers and %d obstacles", e.State.Board.CountLiveFlowers(), e.State.Board.ObstacleCount())

	for outcome == game.Ongoing && e.State.Turn < e.maxTurns {
		var prev *game.GameState
		if learning {
			prev = e.State.Clone()
		}

		action, searchMetric, ok := e.forager.FindMove(e.State)
		applied := ok && e.State.ApplyForager(action)
		if applied {
			e.autopilot()
		}
		if learning && ok {
			learner.Observe(prev, action, e.State)
		}
		e.State.Turn++

		if e.State.Outcome(e.cfg.Goal) == game.Ongoing {
			e.adversaryTurn()
		}
		e.weatherTurn()
		e.State.Board.PurgeDead()

		moveMetric := metrics.MoveMetric{
			Turn:         e.State.Turn,
			Applied:      applied,
			Value:        e.heuristic.Evaluate(e.State),
			SearchMetric: searchMetric,
		}
		if ok {
			moveMetric.Action = action.String()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		outcome = e.State.Outcome(e.cfg.Goal)
	}

	gameMetric.Outcome = outcome.String()
	gameMetric.Turns = e.State.Turn
	gameMetric.HomeNectar = e.State.Board.Nectar
	gameMetric.Obstacles = e.State.Board.ObstacleCount()
	gameMetric.Flowers = e.State.Board.CountLiveFlowers()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("episode ended after %d turns: %s with %d nectar home", gameMetric.Turns, outcome, gameMetric.HomeNectar)
	return outcome, gameMetric, moveMetrics
}

// autopilot walks a full forager home along a planned route, then deposits
// and recovers. The whole walk is part of the current turn.
func (e *Engine) autopilot() {
	f, b := e.State.Forager, e.State.Board
	if !e.cfg.Planner.Autopilot || f.CanCarry() || b.IsHome(f.Pos) {
		return
	}

	noise := e.cfg.Planner.Noise
	if e.State.Weather.Current == game.Adverse {
		noise = e.cfg.Planner.AdverseNoise
	}
	route := e.planner.Route(b, f.Pos, b.Home, noise)
	if len(route) == 0 {
		log.Debug().Msgf("no route home from %s", f.Pos)
		return
	}
	for _, step := range route[1:] {
		if !f.IsAlive() || !f.Move(b, step) {
			break
		}
	}
	if f.DepositAtHome(b) {
		f.RecoverAtHome(b)
		log.Debug().Msgf("autopilot delivered nectar, home now holds %d", b.Nectar)
	}
}

func (e *Engine) adversaryTurn() {
	action, ok := e.adversary.Choose(e.State)
	if !ok {
		return
	}
	if e.State.ApplyAdversary(action) {
		log.Debug().Msgf("adversary played %s", action)
	}
}

func (e *Engine) weatherTurn() {
	cycle, rolled := e.State.Weather.RunCycle(e.State.Board, e.State.Turn, e.rng)
	if !rolled {
		return
	}
	log.Debug().
		Str("weather", cycle.Weather.String()).
		Int("washed", cycle.Washed).
		Int("seedlings", len(cycle.Seedlings)).
		Msg("weather cycle")
}
