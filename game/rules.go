package game

const DefaultGoal = 100

type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	ForagerDead
	FloraExtinct
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Victory:
		return "victory"
	case ForagerDead:
		return "forager_dead"
	case FloraExtinct:
		return "flora_extinct"
	case Exhausted:
		return "exhausted"
	default:
		panic("unexpected outcome")
	}
}

// IsTerminal is the cutoff the search uses: the forager died, the flora is
// gone, or the goal has been reached.
func (gs *GameState) IsTerminal(goal int) bool {
	return !gs.Forager.IsAlive() ||
		gs.Board.CountLiveFlowers() == 0 ||
		gs.Board.Nectar >= goal
}

// Outcome decides whether a live episode is over. Victory is checked first,
// and running out of energy ends the episode as well.
func (gs *GameState) Outcome(goal int) Outcome {
	switch {
	case gs.Board.Nectar >= goal:
		return Victory
	case !gs.Forager.IsAlive():
		return ForagerDead
	case gs.Board.CountLiveFlowers() == 0:
		return FloraExtinct
	case gs.Forager.Energy <= 0:
		return Exhausted
	default:
		return Ongoing
	}
}
